package main

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// formatTooltip renders a full count with thousands separators followed
// by suffix, e.g. "12,345 tokens".
func formatTooltip(count int, suffix string) string {
	s := printer.Sprintf("%d", count)
	if suffix == "" {
		return s
	}
	return s + " " + suffix
}
