package scraper

import (
	"errors"
	"fmt"
	"strings"
)

var errEmptyLink = errors.New("empty product link")

// NormalizeProductURL turns a result-item href into an absolute,
// scheme-qualified address. Protocol-relative links get https, root-relative
// links get the site origin; anything else that is not already absolute
// http(s) is rejected.
func NormalizeProductURL(href, origin string) (string, error) {
	href = strings.TrimSpace(href)

	switch {
	case href == "":
		return "", errEmptyLink
	case strings.HasPrefix(href, "//"):
		return "https:" + href, nil
	case strings.HasPrefix(href, "http://"), strings.HasPrefix(href, "https://"):
		return href, nil
	case strings.HasPrefix(href, "/"):
		return strings.TrimSuffix(origin, "/") + href, nil
	default:
		return "", fmt.Errorf("unsupported link form %q", href)
	}
}
