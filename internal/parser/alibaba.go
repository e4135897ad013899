package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tradewatch/alibaba-scraper/internal/models"
	"github.com/tradewatch/alibaba-scraper/internal/selectors"
)

// AlibabaParser extracts product fields from detail-page markup using the
// same locator table the live scraper drives the browser with.
type AlibabaParser struct {
	sel          selectors.Table
	yearsPattern *regexp.Regexp
	pricePattern *regexp.Regexp
}

func NewAlibabaParser(sel selectors.Table) *AlibabaParser {
	return &AlibabaParser{
		sel:          sel,
		yearsPattern: regexp.MustCompile(`(\d+)\s*(?:yrs?|years?)`),
		pricePattern: regexp.MustCompile(`(?:US\s*)?\$\s*[\d.,]+(?:\s*-\s*(?:US\s*)?\$\s*[\d.,]+)?`),
	}
}

func (p *AlibabaParser) ParseProductPage(html string) (models.Details, error) {
	details := models.NewDetails()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return details, fmt.Errorf("failed to parse HTML: %w", err)
	}

	details.HTMLContent = html

	if desc := p.description(doc); desc != "" {
		details.FullDescription = desc
	}
	if images := p.images(doc); len(images) > 0 {
		details.Images = images
	}
	if price := p.price(doc); price != "" {
		details.PricePerUnit = price
	}
	if years := p.companyYears(doc); years != "" {
		details.CompanyYears = years
	}
	if p.verified(doc) {
		details.VerifiedSupplier = "true"
	}

	return details, nil
}

// FillMissing overwrites only the fields of details that still hold the
// "not available" sentinel, using whatever the markup yields.
func (p *AlibabaParser) FillMissing(details *models.Details, html string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return
	}

	if details.FullDescription == models.NotAvailable {
		if desc := p.description(doc); desc != "" {
			details.FullDescription = desc
		}
	}
	if len(details.Images) == 0 {
		details.Images = p.images(doc)
	}
	if details.PricePerUnit == models.NotAvailable {
		if price := p.price(doc); price != "" {
			details.PricePerUnit = price
		}
	}
	if details.CompanyYears == models.NotAvailable {
		if years := p.companyYears(doc); years != "" {
			details.CompanyYears = years
		}
	}
	if details.VerifiedSupplier == models.NotAvailable && p.verified(doc) {
		details.VerifiedSupplier = "true"
	}
}

func (p *AlibabaParser) ExtractDescription(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}
	desc := p.description(doc)
	if desc == "" {
		return "", fmt.Errorf("no description found")
	}
	return desc, nil
}

func (p *AlibabaParser) ExtractImages(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	return p.images(doc), nil
}

func (p *AlibabaParser) ExtractPrice(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}
	price := p.price(doc)
	if price == "" {
		return "", fmt.Errorf("no price found")
	}
	return price, nil
}

func (p *AlibabaParser) ExtractCompanyYears(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}
	years := p.companyYears(doc)
	if years == "" {
		return "", fmt.Errorf("no company years found")
	}
	return years, nil
}

func (p *AlibabaParser) ExtractVerifiedSupplier(html string) (bool, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return false, err
	}
	return p.verified(doc), nil
}

func (p *AlibabaParser) description(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find(p.sel[selectors.DetailFullDescription]).First().Text())
}

func (p *AlibabaParser) images(doc *goquery.Document) []string {
	images := make([]string, 0)
	seen := make(map[string]bool)
	doc.Find(p.sel[selectors.DetailImages]).Each(func(_ int, s *goquery.Selection) {
		src, ok := s.Attr("src")
		if !ok || src == "" {
			src, _ = s.Attr("data-src")
		}
		src = strings.TrimSpace(src)
		if src == "" || seen[src] {
			return
		}
		seen[src] = true
		images = append(images, src)
	})
	return images
}

func (p *AlibabaParser) price(doc *goquery.Document) string {
	text := strings.TrimSpace(doc.Find(p.sel[selectors.DetailPrice]).First().Text())
	if text == "" {
		return ""
	}
	if match := p.pricePattern.FindString(text); match != "" {
		return match
	}
	return text
}

func (p *AlibabaParser) companyYears(doc *goquery.Document) string {
	text := strings.TrimSpace(doc.Find(p.sel[selectors.DetailCompanyYears]).First().Text())
	if text == "" {
		return ""
	}
	if match := p.yearsPattern.FindStringSubmatch(text); len(match) > 1 {
		return match[1]
	}
	return text
}

func (p *AlibabaParser) verified(doc *goquery.Document) bool {
	return doc.Find(p.sel[selectors.DetailVerifiedStatus]).Length() > 0
}
