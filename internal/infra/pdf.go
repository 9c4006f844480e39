package infra

// pdf.go — Daily summary report rendering using go-pdf/fpdf.
// Produces an A5 landscape sheet with the day's aggregated totals and the
// closing balance, suitable for printing or emailing to the owner.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/varunreddy1024/ledger-backend/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GenerateSummaryPDF renders the stored daily summary as a PDF report.
// storagePath is the directory where the file is written (created if needed).
// Returns the absolute path to the generated file.
func GenerateSummaryPDF(sum *model.DailySummary, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("daily_summary_%s.pdf", sum.Date.Format("2006-01-02"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("L", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Daily Summary Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 6, sum.Date.Format("Monday, 02 January 2006"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.Line(12, pdf.GetY(), pageW-12, pdf.GetY())
	pdf.Ln(4)

	// ── Totals table ──────────────────────────────────────────────────────────
	labelW := contentW * 0.55
	valueW := contentW * 0.45

	row := func(label string, value decimal.Decimal, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 11)
		pdf.CellFormat(labelW, 8, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(valueW, 8, value.StringFixed(2), "", 1, "R", false, 0, "")
	}

	row("Hotel sales (kgs)", sum.HotelKgs, false)
	row("Hotel sales amount", sum.HotelAmount, false)
	row("Counter sales (kgs)", sum.CounterKgs, false)
	row("Counter sales amount", sum.CounterAmount, false)
	row("Total expenses", sum.Expenses, false)

	pdf.Ln(2)
	pdf.Line(12, pdf.GetY(), pageW-12, pdf.GetY())
	pdf.Ln(2)

	row("Closing balance", sum.Balance, true)

	// ── Footer ────────────────────────────────────────────────────────────────
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, "Generated by the ledger backend — totals reflect records at generation time.", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
