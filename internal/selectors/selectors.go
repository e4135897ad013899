package selectors

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Logical element names. The scraper addresses page elements by these keys
// only; the site-specific locator expressions live in a Table.
const (
	PopupConsentButton    = "popup_consent_button"
	PopupCloseButton      = "popup_close_button"
	ImageSearchCameraIcon = "image_search_camera_icon"
	TextSearchBar         = "text_search_bar"
	TextSearchButton      = "text_search_button"
	ProductItem           = "product_item"
	ProductTitle          = "product_title"
	ProductCompanySummary = "product_company_summary"
	ProductLink           = "product_link"
	DetailFullDescription = "product_detail_full_description"
	DetailImages          = "product_detail_images"
	DetailPrice           = "product_detail_price"
	DetailCompanyYears    = "product_detail_company_years"
	DetailVerifiedStatus  = "product_detail_verified_status"
)

var required = []string{
	PopupConsentButton,
	PopupCloseButton,
	ImageSearchCameraIcon,
	TextSearchBar,
	TextSearchButton,
	ProductItem,
	ProductTitle,
	ProductCompanySummary,
	ProductLink,
	DetailFullDescription,
	DetailImages,
	DetailPrice,
	DetailCompanyYears,
	DetailVerifiedStatus,
}

// Table maps a logical element name to a site-specific locator expression.
// It is configuration, not behavior: site markup changes are absorbed by
// swapping the table, not by redeploying code.
type Table map[string]string

// Default returns the built-in locator table for alibaba.com.
func Default() Table {
	return Table{
		PopupConsentButton:    `button:has-text("Consent")`,
		PopupCloseButton:      `div.dialog-close-btn`,
		ImageSearchCameraIcon: `svg.icon-camera`,
		TextSearchBar:         `input.search-bar-input`,
		TextSearchButton:      `button.search-bar-button`,
		ProductItem:           `div.product-item`,
		ProductTitle:          `h2.product-title`,
		ProductCompanySummary: `div.company-summary`,
		ProductLink:           `a.product-link`,
		DetailFullDescription: `div.product-description`,
		DetailImages:          `img.product-image`,
		DetailPrice:           `span.product-price`,
		DetailCompanyYears:    `span.company-years`,
		DetailVerifiedStatus:  `span.verified-supplier-tag`,
	}
}

// Load reads a YAML mapping file and overlays it on the defaults, so a
// config file only needs to pin the selectors that changed.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read selector file %s: %w", path, err)
	}

	overrides := Table{}
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse selector file %s: %w", path, err)
	}

	tbl := Default()
	for name, expr := range overrides {
		tbl[name] = expr
	}

	if err := tbl.Validate(); err != nil {
		return nil, err
	}
	return tbl, nil
}

// Validate checks that every logical name the scraper relies on is mapped.
func (t Table) Validate() error {
	for _, name := range required {
		if t[name] == "" {
			return fmt.Errorf("selector table missing entry for %q", name)
		}
	}
	return nil
}
