package parser

import "github.com/tradewatch/alibaba-scraper/internal/models"

// Parser extracts detail-page fields from raw markup. It exists so field
// extraction stays testable without a live browser, and so the captured
// html_content can back-fill fields the live locators missed.
type Parser interface {
	ParseProductPage(html string) (models.Details, error)
	FillMissing(details *models.Details, html string)
	ExtractDescription(html string) (string, error)
	ExtractImages(html string) ([]string, error)
	ExtractPrice(html string) (string, error)
	ExtractCompanyYears(html string) (string, error)
	ExtractVerifiedSupplier(html string) (bool, error)
}
