package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"tirage/internal/domain/models"
	"tirage/internal/lib/logger/sl"
	"tirage/internal/repository"

	"github.com/go-pdf/fpdf"
)

const (
	csvTimeLayout = "2006-01-02 15:04:05"
	pdfTimeLayout = "02/01/2006 15:04:05"
	fileStamp     = "20060102_150405"
)

// ExportService renders the active associations as downloadable files.
// An empty store is not an error: the CSV keeps its header line and the
// PDF its headings, both with zero data rows.
type ExportService struct {
	log          *slog.Logger
	associations repository.AssociationRepository
}

func NewExportService(log *slog.Logger, associations repository.AssociationRepository) *ExportService {
	return &ExportService{
		log:          log,
		associations: associations,
	}
}

// CSV renders the associations as a CSV attachment and returns the file
// content along with a timestamped filename.
func (s *ExportService) CSV(ctx context.Context) ([]byte, string, error) {
	const op = "service.ExportService.CSV"
	log := s.log.With(slog.String("op", op))

	details, err := s.associations.ListDetails(ctx)
	if err != nil {
		log.Error("failed to list associations", sl.Err(err))
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Personne1", "Personne2", "Date de création"}); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	for _, d := range details {
		created := ""
		if !d.CreatedAt.IsZero() {
			created = d.CreatedAt.Format(csvTimeLayout)
		}

		row := []string{d.Participant, strconv.FormatInt(d.Gift, 10), created}
		if err := w.Write(row); err != nil {
			return nil, "", fmt.Errorf("%s: %w", op, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	filename := "associations_" + time.Now().Format(fileStamp) + ".csv"

	log.Info("csv export ready", slog.Int("rows", len(details)), slog.String("filename", filename))

	return buf.Bytes(), filename, nil
}

// PDF renders the associations as a styled A4 report and returns the file
// content along with a timestamped filename.
func (s *ExportService) PDF(ctx context.Context) ([]byte, string, error) {
	const op = "service.ExportService.PDF"
	log := s.log.With(slog.String("op", op))

	details, err := s.associations.ListDetails(ctx)
	if err != nil {
		log.Error("failed to list associations", sl.Err(err))
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	content, err := renderPDF(details, time.Now())
	if err != nil {
		log.Error("failed to render pdf", sl.Err(err))
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	filename := "associations_" + time.Now().Format(fileStamp) + ".pdf"

	log.Info("pdf export ready", slog.Int("rows", len(details)), slog.String("filename", filename))

	return content, filename, nil
}

func renderPDF(details []models.AssociationDetail, now time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	// The core fonts are cp1252, the French labels need translating.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(44, 62, 80)
	pdf.CellFormat(0, 14, tr("Rapport des Associations"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 6, tr("Généré le "+now.Format("02/01/2006 à 15:04:05")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Total des associations: %d", len(details))), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	widths := [3]float64{63.5, 50.8, 63.5}
	pageWidth, _ := pdf.GetPageSize()
	left := (pageWidth - (widths[0] + widths[1] + widths[2])) / 2

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.35)

	pdf.SetX(left)
	pdf.SetFillColor(52, 152, 219)
	pdf.SetTextColor(245, 245, 245)
	pdf.SetFont("Helvetica", "B", 12)
	for i, h := range [3]string{"Personne1", "Personne2", "Date de création"} {
		pdf.CellFormat(widths[i], 10, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	for i, d := range details {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 220)
		} else {
			pdf.SetFillColor(211, 211, 211)
		}

		created := "N/A"
		if !d.CreatedAt.IsZero() {
			created = d.CreatedAt.Format(pdfTimeLayout)
		}

		pdf.SetX(left)
		pdf.CellFormat(widths[0], 8, tr(d.Participant), "1", 0, "C", true, 0, "")
		pdf.CellFormat(widths[1], 8, strconv.FormatInt(d.Gift, 10), "1", 0, "C", true, 0, "")
		pdf.CellFormat(widths[2], 8, created, "1", 1, "C", true, 0, "")
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 11)
	pdf.CellFormat(0, 6, tr("Document généré automatiquement par l'application d'association"), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
