package models

// NotAvailable marks a field that has not been, or could not be, populated.
const NotAvailable = "N/A"

// ProductRecord is the structured result handed back to callers. Summary
// fields come from the search results page, the rest from the detail page.
type ProductRecord struct {
	Title            string   `json:"title"`
	CompanySummary   string   `json:"company_summary"`
	ProductPageURL   string   `json:"product_page_url"`
	FullDescription  string   `json:"full_description"`
	Images           []string `json:"images"`
	HTMLContent      string   `json:"html_content"`
	PricePerUnit     string   `json:"price_per_unit"`
	CompanyYears     string   `json:"company_years"`
	VerifiedSupplier string   `json:"verified_supplier"`
}

// Details holds the fields extracted from a product detail page.
type Details struct {
	FullDescription  string   `json:"full_description"`
	Images           []string `json:"images"`
	HTMLContent      string   `json:"html_content"`
	PricePerUnit     string   `json:"price_per_unit"`
	CompanyYears     string   `json:"company_years"`
	VerifiedSupplier string   `json:"verified_supplier"`
}

func NewProductRecord(productURL string) ProductRecord {
	return ProductRecord{
		Title:            NotAvailable,
		CompanySummary:   NotAvailable,
		ProductPageURL:   productURL,
		FullDescription:  NotAvailable,
		Images:           make([]string, 0),
		HTMLContent:      NotAvailable,
		PricePerUnit:     NotAvailable,
		CompanyYears:     NotAvailable,
		VerifiedSupplier: NotAvailable,
	}
}

func NewDetails() Details {
	return Details{
		FullDescription:  NotAvailable,
		Images:           make([]string, 0),
		HTMLContent:      NotAvailable,
		PricePerUnit:     NotAvailable,
		CompanyYears:     NotAvailable,
		VerifiedSupplier: NotAvailable,
	}
}

// MergeDetails copies detail-page fields into the record. Images are
// replaced, not appended; summary fields are untouched.
func (r *ProductRecord) MergeDetails(d Details) {
	r.FullDescription = d.FullDescription
	r.HTMLContent = d.HTMLContent
	r.PricePerUnit = d.PricePerUnit
	r.CompanyYears = d.CompanyYears
	r.VerifiedSupplier = d.VerifiedSupplier
	if d.Images != nil {
		r.Images = d.Images
	}
}

// Enriched reports whether any detail-page field made it past the sentinel.
func (r *ProductRecord) Enriched() bool {
	return r.FullDescription != NotAvailable ||
		r.HTMLContent != NotAvailable ||
		r.PricePerUnit != NotAvailable ||
		r.CompanyYears != NotAvailable ||
		r.VerifiedSupplier != NotAvailable ||
		len(r.Images) > 0
}
