package scraper

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/tradewatch/alibaba-scraper/internal/browser"
)

const maxSuffixLen = 60

// diagnose writes a screenshot named after the failing step into the
// configured directory. It is a side-channel debugging aid: a failed write
// is itself only logged at debug.
func (s *Scraper) diagnose(page browser.Page, name string, cause error) {
	path := filepath.Join(s.cfg.ScreenshotDir, name+".png")

	if err := page.Screenshot(path); err != nil {
		s.logger.Debug("diagnostic screenshot failed", "path", path, "error", err)
		return
	}

	s.logger.Info("diagnostic screenshot written", "path", path, "cause", cause)
}

// sanitizeURLSuffix derives a filesystem-safe suffix from the last path
// segment of a product URL, falling back to a short random token when the
// segment yields nothing usable.
func sanitizeURLSuffix(rawURL string) string {
	trimmed := strings.TrimRight(rawURL, "/")
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
		trimmed = trimmed[:i]
	}
	segment := trimmed
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		segment = trimmed[i+1:]
	}

	var b strings.Builder
	for _, r := range segment {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '_', r == '-':
			b.WriteRune(r)
		}
	}

	out := b.String()
	if out == "" || out == "." || out == ".." {
		return uuid.NewString()[:8]
	}
	if len(out) > maxSuffixLen {
		out = out[:maxSuffixLen]
	}
	return out
}
