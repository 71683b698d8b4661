package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Category is the display form of a product category label.
// Code is the label exactly as carried by products, Name is the label capitalised for display.
type Category struct {
	Code string
	Name string
}

func NewCategory(code string) Category {
	return Category{Code: code, Name: capitalize(code)}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	b.WriteRune(unicode.ToUpper(r))
	b.WriteString(s[size:])
	return b.String()
}
