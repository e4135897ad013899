// Package scraper drives the search-and-scrape workflow: reach a results
// page, enumerate result items, visit each product page and merge the
// extracted fields into ProductRecords.
package scraper

import (
	"log/slog"

	"github.com/tradewatch/alibaba-scraper/internal/browser"
	"github.com/tradewatch/alibaba-scraper/internal/config"
	"github.com/tradewatch/alibaba-scraper/internal/parser"
	"github.com/tradewatch/alibaba-scraper/internal/ratelimit"
	"github.com/tradewatch/alibaba-scraper/internal/selectors"
)

// PageOpener spawns pages bound to the live browsing context. Implemented by
// browser.Session.
type PageOpener interface {
	NewPage() (browser.Page, error)
}

type Scraper struct {
	opener  PageOpener
	sel     selectors.Table
	cfg     config.ScraperConfig
	logger  *slog.Logger
	limiter ratelimit.RateLimiter
	parser  parser.Parser
}

func New(opener PageOpener, sel selectors.Table, cfg *config.Config, logger *slog.Logger) *Scraper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scraper{
		opener:  opener,
		sel:     sel,
		cfg:     cfg.Scraper,
		logger:  logger.With("component", "scraper"),
		limiter: ratelimit.NewSimpleRateLimiter(cfg.Scraper.RateLimitMin, cfg.Scraper.RateLimitMax),
		parser:  parser.NewAlibabaParser(sel),
	}
}
