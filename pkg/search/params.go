package search

import (
	"net/url"
	"strings"
)

// NormalizeTimeRange canonicalizes a time range value. Both the short DDG
// style ("d", "w", "m", "y") and the long form ("day", ...) are accepted;
// anything else returns "".
func NormalizeTimeRange(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "d", "day":
		return "day"
	case "w", "week":
		return "week"
	case "m", "month":
		return "month"
	case "y", "year":
		return "year"
	}
	return ""
}

// NormalizeSafeSearch canonicalizes a safe-search level to "off", "moderate"
// or "strict". "on" is treated as "strict"; unknown values default to
// "moderate".
func NormalizeSafeSearch(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "off":
		return "off"
	case "strict", "on":
		return "strict"
	default:
		return "moderate"
	}
}

// regionToLanguage converts a ddgs-style region pair such as "us-en" into a
// BCP 47 language tag such as "en-US". A bare language code passes through.
// "wt-wt" means no region and maps to "".
func regionToLanguage(region string) string {
	region = strings.TrimSpace(region)
	if region == "" || strings.EqualFold(region, "wt-wt") {
		return ""
	}
	parts := strings.SplitN(region, "-", 2)
	if len(parts) != 2 {
		return region
	}
	return parts[1] + "-" + strings.ToUpper(parts[0])
}

// regionCountry extracts the country code from a region pair, e.g. "us" from
// "us-en".
func regionCountry(region string) string {
	region = strings.TrimSpace(region)
	if strings.EqualFold(region, "wt-wt") {
		return ""
	}
	parts := strings.SplitN(region, "-", 2)
	if len(parts) != 2 {
		return ""
	}
	return strings.ToUpper(parts[0])
}

func resolveSiteName(raw string) string {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return parsed.Hostname()
}
