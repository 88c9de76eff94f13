// Package condition maps free-text weather descriptions to coarse categories
// and picks the illustration shown next to the current conditions.
package condition

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Category is a coarse weather condition used for iconography
type Category string

const (
	CategoryClear       Category = "clear"
	CategoryCloud       Category = "cloud"
	CategoryRain        Category = "rain"
	CategoryRainThunder Category = "rain-thunder"
	CategorySnow        Category = "snow"
	CategoryFog         Category = "fog"
	CategoryDefault     Category = "default"
)

const (
	dayStart = "06:00:00"
	dayEnd   = "18:00:00"
)

type keywordGroup struct {
	category Category
	keywords []string
}

// Order matters: the first group with a matching keyword wins.
// Thunder sits ahead of rain so "chuva com trovoada" is not plain rain.
var keywordGroups = foldGroups([]keywordGroup{
	{CategoryClear, []string{"sol", "ensolarado", "claro", "limpo", "clear", "sun"}},
	{CategoryCloud, []string{"nuvem", "nuvens", "nublado", "encoberto", "cloud", "overcast"}},
	{CategoryRainThunder, []string{"trovoada", "tempestade", "thunder"}},
	{CategoryRain, []string{"chuva", "pancada", "garoa", "chuvisco", "rain", "drizzle", "shower"}},
	{CategorySnow, []string{"neve", "granizo", "congelante", "snow", "hail", "sleet", "freezing"}},
	{CategoryFog, []string{"neblina", "névoa", "fumaça", "bruma", "mist", "fog", "haze", "smoke"}},
})

func foldGroups(groups []keywordGroup) []keywordGroup {
	folder := cases.Fold()
	for i := range groups {
		for j, kw := range groups[i].keywords {
			groups[i].keywords[j] = folder.String(kw)
		}
	}
	return groups
}

// Classify returns the category of a weather description
func Classify(description string) Category {
	text := cases.Fold().String(strings.TrimSpace(description))
	if text == "" {
		return CategoryDefault
	}

	for _, group := range keywordGroups {
		for _, kw := range group.keywords {
			if containsWord(text, kw) {
				return group.category
			}
		}
	}
	return CategoryDefault
}

// containsWord reports whether kw occurs in text starting at a word boundary,
// so "sol" matches "sol forte" but not "isolada".
func containsWord(text, kw string) bool {
	for offset := 0; offset < len(text); {
		idx := strings.Index(text[offset:], kw)
		if idx < 0 {
			return false
		}
		pos := offset + idx
		if pos == 0 {
			return true
		}
		prev, _ := utf8.DecodeLastRuneInString(text[:pos])
		if !unicode.IsLetter(prev) {
			return true
		}
		offset = pos + len(kw)
	}
	return false
}

// IsDaytime reports whether a "dd/mm/yyyy, HH:MM:SS" label falls between 06:00:00 and
// 18:00:00 inclusive. Labels without a well-formed time are treated as daytime.
func IsDaytime(label string) bool {
	_, clock, found := strings.Cut(label, ",")
	if !found {
		return true
	}

	clock = strings.TrimSpace(clock)
	if len(clock) != len(dayStart) {
		return true
	}
	if _, err := time.Parse(time.TimeOnly, clock); err != nil {
		return true
	}

	// Fixed-width zero-padded 24h time, so lexical order is chronological order.
	return clock >= dayStart && clock <= dayEnd
}
