package utils

import (
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// FuzzyThreshold is the minimum similarity for a fuzzy match.
const FuzzyThreshold = 0.5

// NormalizeInput trims, strips accents and lower-cases s.
func NormalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// CalculateSimilarity returns 1 - levenshtein distance / longer length.
func CalculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len([]rune(a)))
	if l := float64(len([]rune(b))); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

// Search returns the indexes of docs matching query. Each doc is a list of
// searchable fields. Substring matches on normalized text win; when there
// are none, fields or words within FuzzyThreshold similarity match.
func Search(query string, docs [][]string) []int {
	q := NormalizeInput(query)
	hits := make([]int, 0)
	if q == "" {
		for i := range docs {
			hits = append(hits, i)
		}
		return hits
	}

	normalized := make([][]string, len(docs))
	for i, fields := range docs {
		for _, f := range fields {
			nf := NormalizeInput(f)
			if nf == "" {
				continue
			}
			normalized[i] = append(normalized[i], nf)
			if strings.Contains(nf, q) {
				hits = appendOnce(hits, i)
			}
		}
	}
	if len(hits) > 0 {
		return hits
	}

	for i, fields := range normalized {
		for _, f := range fields {
			if bestSimilarity(q, f) >= FuzzyThreshold {
				hits = appendOnce(hits, i)
				break
			}
		}
	}
	return hits
}

// Suggest returns up to n values closest to query.
func Suggest(query string, values []string, n int) []string {
	q := NormalizeInput(query)
	if q == "" || n <= 0 {
		return nil
	}
	seen := make(map[string]bool, len(values))
	keywords := make([]string, 0, len(values))
	for _, v := range values {
		nv := NormalizeInput(v)
		if nv != "" && !seen[nv] {
			seen[nv] = true
			keywords = append(keywords, nv)
		}
	}
	if len(keywords) == 0 {
		return nil
	}
	matcher := closestmatch.New(keywords, []int{2, 3})
	suggestions := make([]string, 0, n)
	for _, s := range matcher.ClosestN(q, n) {
		if s != "" {
			suggestions = append(suggestions, s)
		}
	}
	return suggestions
}

func bestSimilarity(q, field string) float64 {
	best := CalculateSimilarity(q, field)
	for _, word := range strings.Fields(field) {
		if s := CalculateSimilarity(q, word); s > best {
			best = s
		}
	}
	return best
}

func appendOnce(list []int, i int) []int {
	if n := len(list); n > 0 && list[n-1] == i {
		return list
	}
	return append(list, i)
}
