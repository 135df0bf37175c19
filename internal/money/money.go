// Package money converts between the store's localized currency strings
// ("R$ 2.500,00") and numeric amounts. Every component that needs to do
// arithmetic on a displayed price goes through this package; nothing else
// parses price text.
package money

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Symbol is the currency prefix produced by Format and tolerated by Parse.
const Symbol = "R$"

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Parse converts a localized currency string into its numeric amount.
// The symbol is stripped, "." thousands separators removed and the decimal
// comma replaced with a point before parsing. Empty or malformed input
// yields 0; Parse never fails, since the source is user-entered free text.
func Parse(text string) float64 {
	s := strings.TrimSpace(text)
	s = strings.ReplaceAll(s, Symbol, "")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// Format renders an amount in the localized presentation with thousands
// grouping and exactly two decimal places, e.g. 2500 -> "R$ 2.500,00".
func Format(amount float64) string {
	return printer.Sprintf("%s %.2f", Symbol, amount)
}
