package utils

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
)

var (
	nonAlnumRegex  = regexp.MustCompile(`[^a-z0-9]+`)
	multiDashRegex = regexp.MustCompile(`-+`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
)

// Slugify turns a display name into its URL slug
// ("Hair Oils" -> "hair-oils").
func Slugify(input string) string {
	slug := strings.ToLower(strings.TrimSpace(input))
	slug = nonAlnumRegex.ReplaceAllString(slug, "-")
	slug = multiDashRegex.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// TitleFromSlug converts a slug back to its title-cased display form
// ("hair-oils" -> "Hair Oils").
func TitleFromSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// NormalizeName collapses whitespace for case-insensitive slug comparison.
func NormalizeName(name string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

func StrPtr(s string) *string {
	return &s
}

func FloatPtr(f float64) *float64 {
	return &f
}

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteJSONError writes the storefront error envelope. details is omitted
// when empty.
func WriteJSONError(w http.ResponseWriter, message, details string, status int) {
	body := map[string]string{"error": message}
	if details != "" {
		body["details"] = details
	}
	WriteJSON(w, status, body)
}
