package search

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// priceConstraint matches an inline maximum-price phrase such as
// "under $25", "less than 30", "<= 19.99" or "max 15". The whole span is
// removed from the query before tokenization so the digits never become
// search tokens. Only the first occurrence is honored.
var priceConstraint = regexp.MustCompile(`(?i)(?:\b(?:under|less than|below|max)\b|<=|≤|<)\s*\$?\s*(\d+(?:\.\d+)?)`)

// ExtractPriceCeiling detects an inline price ceiling in raw query text.
// It returns the ceiling in cents (or nil), plus the text with the matched
// span removed.
func ExtractPriceCeiling(query string) (*int, string) {
	loc := priceConstraint.FindStringSubmatchIndex(query)
	if loc == nil {
		return nil, query
	}
	amount := query[loc[2]:loc[3]]
	dollars, err := strconv.ParseFloat(amount, 64)
	if err != nil || dollars < 0 {
		return nil, query
	}
	cents := int(math.Round(dollars * 100))
	remainder := query[:loc[0]] + " " + query[loc[1]:]
	return &cents, remainder
}

// Tokenize lowercases the text, splits on runs of non-alphanumeric
// characters and drops empty fragments. Duplicates are removed; token
// order carries no meaning downstream.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(fields))
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		tokens = append(tokens, f)
	}
	return tokens
}
