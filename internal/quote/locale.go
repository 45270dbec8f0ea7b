package quote

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// numberFormat holds the currency layout conventions of one locale.
type numberFormat struct {
	tag     language.Tag
	group   string
	decimal string
	// symbolFirst places the symbol before the amount; space separates them.
	symbolFirst bool
	space       bool
}

// formats lists the supported locales. The first entry is the fallback.
var formats = []numberFormat{
	{tag: language.BrazilianPortuguese, group: ".", decimal: ",", symbolFirst: true, space: true},
	{tag: language.AmericanEnglish, group: ",", decimal: ".", symbolFirst: true},
	{tag: language.BritishEnglish, group: ",", decimal: ".", symbolFirst: true},
	{tag: language.MustParse("de-DE"), group: ".", decimal: ",", space: true},
}

var symbols = map[currency.Unit]string{
	currency.BRL: "R$",
	currency.USD: "$",
	currency.GBP: "£",
	currency.EUR: "€",
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, 0, len(formats))
	for _, f := range formats {
		tags = append(tags, f.tag)
	}
	return language.NewMatcher(tags)
}()

// localeFormat is the resolved layout, currency and minor digits for a tag.
type localeFormat struct {
	numberFormat
	unit   currency.Unit
	symbol string
	scale  int
}

// lookup resolves locale to the closest supported format.
func lookup(locale language.Tag) localeFormat {
	_, idx, conf := matcher.Match(locale)
	if conf == language.No || idx < 0 || idx >= len(formats) {
		idx = 0
	}
	nf := formats[idx]

	unit, _ := currency.FromTag(nf.tag)
	scale, _ := currency.Standard.Rounding(unit)
	symbol, ok := symbols[unit]
	if !ok {
		symbol = unit.String()
	}
	return localeFormat{numberFormat: nf, unit: unit, symbol: symbol, scale: scale}
}

// Supported returns the locales with a dedicated currency layout.
func Supported() []language.Tag {
	out := make([]language.Tag, 0, len(formats))
	for _, f := range formats {
		out = append(out, f.tag)
	}
	return out
}
