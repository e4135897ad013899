package scraper

import (
	"context"
	"strings"

	"github.com/tradewatch/alibaba-scraper/internal/browser"
	"github.com/tradewatch/alibaba-scraper/internal/models"
	"github.com/tradewatch/alibaba-scraper/internal/selectors"
)

// parseSearchResults enumerates result items on a loaded results page and
// returns one enriched record per accepted item. It never fails: a page with
// no items - or nothing but malformed items - yields an empty slice.
//
// The result limit bounds raw enumeration in document order, counting items
// that end up skipped. The first N items in the DOM are considered; a skip
// inside that window is not replaced from beyond it.
func (s *Scraper) parseSearchResults(ctx context.Context, page browser.Page) []models.ProductRecord {
	records := make([]models.ProductRecord, 0)

	itemSel := s.sel[selectors.ProductItem]
	appeared := s.waitFor(ctx, func() bool {
		n, err := page.Locator(itemSel).Count()
		return err == nil && n > 0
	}, s.cfg.ResultWaitTimeout)

	if appeared.kind != outcomeOK {
		s.logger.Warn("no result items appeared", "outcome", appeared.String(), "url", page.URL())
		s.diagnose(page, "error_search_results_no_items", nil)
		return records
	}

	items, err := page.Locator(itemSel).All()
	if err != nil {
		s.logger.Warn("failed to enumerate result items", "error", err)
		s.diagnose(page, "error_search_results_no_items", err)
		return records
	}

	s.logger.Info("found result items", "count", len(items))

	if s.cfg.ResultLimit > 0 && len(items) > s.cfg.ResultLimit {
		s.logger.Info("limiting processed items", "limit", s.cfg.ResultLimit, "found", len(items))
		items = items[:s.cfg.ResultLimit]
	}

	for i, item := range items {
		record, result := s.extractSummary(i, item)
		if result.kind != outcomeOK {
			s.logger.Warn("skipping result item", "index", i, "outcome", result.String())
			continue
		}

		details := s.extractDetails(ctx, record.ProductPageURL)
		record.MergeDetails(details)

		records = append(records, record)
		s.logger.Info("processed result item", "index", i, "title", record.Title)
	}

	return records
}

// extractSummary pulls title, company summary and the detail-page link out
// of a single result item. Any miss rejects just this item.
func (s *Scraper) extractSummary(index int, item browser.Element) (models.ProductRecord, outcome) {
	title, err := item.Locator(s.sel[selectors.ProductTitle]).First().TextContent(s.cfg.FieldTimeout)
	if err != nil {
		return models.ProductRecord{}, outcome{kind: outcomeNotFound, reason: "title: " + err.Error()}
	}

	company, err := item.Locator(s.sel[selectors.ProductCompanySummary]).First().TextContent(s.cfg.FieldTimeout)
	if err != nil {
		return models.ProductRecord{}, outcome{kind: outcomeNotFound, reason: "company summary: " + err.Error()}
	}

	href, err := item.Locator(s.sel[selectors.ProductLink]).First().GetAttribute("href", s.cfg.FieldTimeout)
	if err != nil || href == "" {
		return models.ProductRecord{}, outcome{kind: outcomeNotFound, reason: "product link missing"}
	}

	productURL, err := NormalizeProductURL(href, s.cfg.Origin())
	if err != nil {
		return models.ProductRecord{}, outcome{kind: outcomeRejected, reason: err.Error()}
	}

	record := models.NewProductRecord(productURL)
	record.Title = strings.TrimSpace(title)
	record.CompanySummary = strings.TrimSpace(company)
	return record, outcome{kind: outcomeOK}
}
