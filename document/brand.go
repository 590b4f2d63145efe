package document

import (
	"regexp"
	"strings"

	"github.com/tom2tomtomtom/playbookwiz/core"
)

var (
	hexColorRe = regexp.MustCompile(`#[0-9A-Fa-f]{6}`)
	rgbColorRe = regexp.MustCompile(`(?i)rgb\(\s*\d+\s*,\s*\d+\s*,\s*\d+\s*\)`)
)

// brandKeywords are the terms counted to gauge how brand-focused a
// document is.
var brandKeywords = []string{
	"brand", "logo", "color", "font", "typography", "voice", "tone",
	"guidelines", "identity", "palette", "style", "design",
}

// ExtractBrandElements finds color definitions and brand keyword counts
// in extracted text.
func ExtractBrandElements(text string) core.BrandElements {
	elements := core.BrandElements{
		KeywordCounts: make(map[string]int),
	}

	// Colors: hex codes first, then rgb() definitions, deduplicated
	seen := make(map[string]bool)
	for _, match := range hexColorRe.FindAllString(text, -1) {
		color := strings.ToUpper(match)
		if !seen[color] {
			seen[color] = true
			elements.Colors = append(elements.Colors, color)
		}
	}
	for _, match := range rgbColorRe.FindAllString(text, -1) {
		color := strings.ToLower(strings.ReplaceAll(match, " ", ""))
		if !seen[color] {
			seen[color] = true
			elements.Colors = append(elements.Colors, color)
		}
	}

	lower := strings.ToLower(text)
	for _, keyword := range brandKeywords {
		if count := strings.Count(lower, keyword); count > 0 {
			elements.KeywordCounts[keyword] = count
		}
	}

	return elements
}
