package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProductRecordDefaults(t *testing.T) {
	r := NewProductRecord("https://www.alibaba.com/product/1.html")

	assert.Equal(t, "https://www.alibaba.com/product/1.html", r.ProductPageURL)
	assert.Equal(t, NotAvailable, r.Title)
	assert.Equal(t, NotAvailable, r.CompanySummary)
	assert.Equal(t, NotAvailable, r.FullDescription)
	assert.Equal(t, NotAvailable, r.HTMLContent)
	assert.Equal(t, NotAvailable, r.PricePerUnit)
	assert.Equal(t, NotAvailable, r.CompanyYears)
	assert.Equal(t, NotAvailable, r.VerifiedSupplier)
	assert.NotNil(t, r.Images)
	assert.Empty(t, r.Images)
	assert.False(t, r.Enriched())
}

func TestMergeDetailsKeepsSummaryFields(t *testing.T) {
	r := NewProductRecord("https://example.com/p/1")
	r.Title = "Widget"
	r.CompanySummary = "Shenzhen Widget Co."

	d := NewDetails()
	d.FullDescription = "A very good widget"
	d.Images = []string{"https://cdn.example.com/1.jpg"}
	d.HTMLContent = "<html></html>"

	r.MergeDetails(d)

	assert.Equal(t, "Widget", r.Title)
	assert.Equal(t, "Shenzhen Widget Co.", r.CompanySummary)
	assert.Equal(t, "https://example.com/p/1", r.ProductPageURL)
	assert.Equal(t, "A very good widget", r.FullDescription)
	assert.Equal(t, []string{"https://cdn.example.com/1.jpg"}, r.Images)
	assert.True(t, r.Enriched())
}

func TestMergeDetailsWithUntouchedDetailsKeepsSentinels(t *testing.T) {
	r := NewProductRecord("https://example.com/p/1")
	r.MergeDetails(NewDetails())

	assert.Equal(t, NotAvailable, r.FullDescription)
	assert.Empty(t, r.Images)
	assert.False(t, r.Enriched())
}
