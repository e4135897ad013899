// Package export writes gathered records to files or a terminal. The
// scraping library itself only ever returns in-memory slices; exporting is a
// CLI concern.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tradewatch/alibaba-scraper/internal/models"
)

// WriteJSON writes the records as indented JSON. The file appears
// atomically: content goes to a temp file first, then a rename.
func WriteJSON(path string, records []models.ProductRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmpFile, err)
	}

	return os.Rename(tmpFile, path)
}

// WriteCSV writes the summary columns of each record. The raw markup and
// image list stay out of the CSV; use JSON for the full records.
func WriteCSV(path string, records []models.ProductRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"title", "company_summary", "product_page_url", "price_per_unit", "company_years", "verified_supplier"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{r.Title, r.CompanySummary, r.ProductPageURL, r.PricePerUnit, r.CompanyYears, r.VerifiedSupplier}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

// PrintSummary writes a human-readable listing of the records.
func PrintSummary(w io.Writer, records []models.ProductRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No products found.")
		return
	}

	for i, r := range records {
		fmt.Fprintf(w, "%d. %s\n", i+1, r.Title)
		fmt.Fprintf(w, "   Company: %s\n", r.CompanySummary)
		fmt.Fprintf(w, "   URL: %s\n", r.ProductPageURL)
		fmt.Fprintf(w, "   Price: %s\n", r.PricePerUnit)
		fmt.Fprintf(w, "   Images: %d\n", len(r.Images))
		fmt.Fprintln(w, "---")
	}
}
