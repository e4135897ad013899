package scraper

import (
	"context"
	"strings"

	"github.com/tradewatch/alibaba-scraper/internal/browser"
	"github.com/tradewatch/alibaba-scraper/internal/models"
	"github.com/tradewatch/alibaba-scraper/internal/selectors"
)

// extractDetails loads a product page and extracts the extended fields. It
// never fails past this boundary: whatever could not be extracted keeps its
// sentinel, and the partial Details is returned. The page is closed on every
// exit path.
func (s *Scraper) extractDetails(ctx context.Context, productURL string) models.Details {
	details := models.NewDetails()

	if err := s.limiter.Wait(ctx); err != nil {
		s.logger.Warn("detail extraction cancelled", "url", productURL, "error", err)
		return details
	}

	page, err := s.opener.NewPage()
	if err != nil {
		s.logger.Warn("failed to open detail page", "url", productURL, "error", err)
		return details
	}
	defer page.Close()

	s.logger.Info("navigating to product detail page", "url", productURL)

	if err := page.Goto(productURL, s.cfg.NavigationTimeout); err != nil {
		s.logger.Warn("detail page navigation failed", "url", productURL, "error", err)
		s.diagnose(page, "error_product_page_"+sanitizeURLSuffix(productURL), err)
		return details
	}

	// Popups show up on product pages too.
	s.dismissPopups(ctx, page)

	if text, err := page.Locator(s.sel[selectors.DetailFullDescription]).First().TextContent(s.cfg.FieldTimeout); err == nil {
		if text = strings.TrimSpace(text); text != "" {
			details.FullDescription = text
		}
	} else {
		s.logger.Debug("description not extracted", "url", productURL, "error", err)
	}

	details.Images = append(details.Images, s.collectImages(page, productURL)...)

	if text, err := page.Locator(s.sel[selectors.DetailPrice]).First().TextContent(s.cfg.FieldTimeout); err == nil {
		if text = strings.TrimSpace(text); text != "" {
			details.PricePerUnit = text
		}
	} else {
		s.logger.Debug("price not extracted", "url", productURL, "error", err)
	}

	if text, err := page.Locator(s.sel[selectors.DetailCompanyYears]).First().TextContent(s.cfg.FieldTimeout); err == nil {
		if text = strings.TrimSpace(text); text != "" {
			details.CompanyYears = text
		}
	} else {
		s.logger.Debug("company years not extracted", "url", productURL, "error", err)
	}

	if visible, err := page.Locator(s.sel[selectors.DetailVerifiedStatus]).First().IsVisible(); err == nil && visible {
		details.VerifiedSupplier = "true"
	}

	// The raw markup is always captured as a fallback artifact; fields the
	// live locators missed get a second chance against it.
	if html, err := page.Content(); err == nil {
		details.HTMLContent = html
		s.parser.FillMissing(&details, html)
		// A fully captured page with no badge anywhere means "not
		// verified", not "unknown".
		if details.VerifiedSupplier == models.NotAvailable {
			details.VerifiedSupplier = "false"
		}
	} else {
		s.logger.Warn("failed to capture page markup", "url", productURL, "error", err)
		s.diagnose(page, "error_product_page_"+sanitizeURLSuffix(productURL), err)
	}

	return details
}

func (s *Scraper) collectImages(page browser.Page, productURL string) []string {
	elements, err := page.Locator(s.sel[selectors.DetailImages]).All()
	if err != nil {
		s.logger.Debug("images not extracted", "url", productURL, "error", err)
		return nil
	}

	images := make([]string, 0, len(elements))
	seen := make(map[string]bool)
	for _, el := range elements {
		src, err := el.GetAttribute("src", s.cfg.FieldTimeout)
		if err != nil || src == "" || seen[src] {
			continue
		}
		seen[src] = true
		images = append(images, src)
	}
	return images
}
