package domain

import "strings"

// NormalizeDestinationURL trims the raw destination and prefixes it with
// https:// when no http or https scheme is present. Advertisers routinely
// enter bare domains like "example.com/app"; navigation needs an absolute
// URL. Empty input stays empty.
func NormalizeDestinationURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return trimmed
	}
	return "https://" + trimmed
}
