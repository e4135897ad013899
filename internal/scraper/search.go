package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/tradewatch/alibaba-scraper/internal/browser"
	"github.com/tradewatch/alibaba-scraper/internal/models"
	"github.com/tradewatch/alibaba-scraper/internal/selectors"
)

// SearchByText runs a text-query search and returns one record per accepted
// result item. The returned error is non-nil only when no browser session is
// available; every failure past that point degrades to an empty slice with a
// diagnostic screenshot, never an error.
func (s *Scraper) SearchByText(ctx context.Context, query string) ([]models.ProductRecord, error) {
	page, err := s.opener.NewPage()
	if err != nil {
		return nil, fmt.Errorf("text search: %w", err)
	}
	defer page.Close()

	s.logger.Info("starting text search", "query", query)

	if out := s.reachSearchPage(ctx, page); out.kind != outcomeOK {
		s.logger.Warn("text search aborted", "outcome", out.String())
		s.diagnose(page, "error_text_search_page", nil)
		return []models.ProductRecord{}, nil
	}

	if err := page.Locator(s.sel[selectors.TextSearchBar]).First().Fill(query, s.cfg.ActionTimeout); err != nil {
		s.logger.Warn("failed to fill search bar", "error", err)
		s.diagnose(page, "error_text_search_page", err)
		return []models.ProductRecord{}, nil
	}

	if err := page.Locator(s.sel[selectors.TextSearchButton]).First().Click(s.cfg.ActionTimeout); err != nil {
		s.logger.Warn("failed to click search button", "error", err)
		s.diagnose(page, "error_text_search_page", err)
		return []models.ProductRecord{}, nil
	}

	s.settle(ctx, page, s.cfg.TextSettleTimeout)

	return s.parseSearchResults(ctx, page), nil
}

// SearchByImage runs an image-upload search: it clicks the camera trigger
// while intercepting the file-selection dialog, supplies the image, then
// parses whatever results materialize. Same degradation contract as
// SearchByText.
func (s *Scraper) SearchByImage(ctx context.Context, imagePath string) ([]models.ProductRecord, error) {
	page, err := s.opener.NewPage()
	if err != nil {
		return nil, fmt.Errorf("image search: %w", err)
	}
	defer page.Close()

	s.logger.Info("starting image search", "image", imagePath)

	if out := s.reachSearchPage(ctx, page); out.kind != outcomeOK {
		s.logger.Warn("image search aborted", "outcome", out.String())
		s.diagnose(page, "error_image_search_page", nil)
		return []models.ProductRecord{}, nil
	}

	cameraSel := s.sel[selectors.ImageSearchCameraIcon]
	chooser, err := page.ExpectFileChooser(func() error {
		return page.Locator(cameraSel).First().Click(s.cfg.ActionTimeout)
	}, s.cfg.FileChooserTimeout)
	if err != nil {
		s.logger.Warn("file chooser was not opened", "selector", cameraSel, "error", err)
		s.diagnose(page, "error_image_search_page", err)
		return []models.ProductRecord{}, nil
	}

	if err := chooser.SetFiles(imagePath); err != nil {
		s.logger.Warn("failed to supply image file", "image", imagePath, "error", err)
		s.diagnose(page, "error_image_search_page", err)
		return []models.ProductRecord{}, nil
	}

	s.logger.Info("image set for upload", "image", imagePath)

	s.settle(ctx, page, s.cfg.ImageSettleTimeout)

	return s.parseSearchResults(ctx, page), nil
}

// reachSearchPage navigates to the site root and clears any interstitials.
func (s *Scraper) reachSearchPage(ctx context.Context, page browser.Page) outcome {
	if err := page.Goto(s.cfg.BaseURL, s.cfg.NavigationTimeout); err != nil {
		s.logger.Warn("failed to reach site root", "url", s.cfg.BaseURL, "error", err)
		return outcome{kind: outcomeTimeout, reason: err.Error()}
	}
	s.dismissPopups(ctx, page)
	return outcome{kind: outcomeOK}
}

// settle waits for result items to materialize after a search action. The
// page offers no reliable load-completion signal, so this polls for the
// condition with the settle duration as an upper bound; a timeout here is
// not fatal, the result parser does its own bounded wait.
func (s *Scraper) settle(ctx context.Context, page browser.Page, timeout time.Duration) {
	itemSel := s.sel[selectors.ProductItem]
	out := s.waitFor(ctx, func() bool {
		n, err := page.Locator(itemSel).Count()
		return err == nil && n > 0
	}, timeout)

	if out.kind != outcomeOK {
		s.logger.Debug("results did not materialize within settle window", "outcome", out.String())
	}
}
