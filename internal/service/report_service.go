package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/varunreddy1024/ledger-backend/internal/config"
	"github.com/varunreddy1024/ledger-backend/internal/infra"
	"github.com/varunreddy1024/ledger-backend/internal/repository"
	"github.com/varunreddy1024/ledger-backend/internal/worker"
)

// ErrNoRecipient is returned when an email report is requested but neither
// the request nor REPORT_EMAIL names a recipient.
var ErrNoRecipient = errors.New("no report recipient configured")

// ReportService turns a stored daily summary into a PDF report and hands
// email distribution off to the worker queue.
type ReportService interface {
	// BuildPDF renders the summary for day and returns the file path.
	// Fails with gorm.ErrRecordNotFound when no summary exists for day.
	BuildPDF(ctx context.Context, day time.Time) (string, error)
	// EmailReport renders the PDF and enqueues a report job; delivery is
	// asynchronous and failures land in the dead letter queue.
	EmailReport(ctx context.Context, day time.Time, toEmail string) error
}

type reportService struct {
	summaries  repository.SummaryRepository
	dispatcher *worker.Dispatcher
	cfg        *config.Config
}

func NewReportService(summaries repository.SummaryRepository, dispatcher *worker.Dispatcher, cfg *config.Config) ReportService {
	return &reportService{summaries: summaries, dispatcher: dispatcher, cfg: cfg}
}

func (s *reportService) BuildPDF(ctx context.Context, day time.Time) (string, error) {
	sum, err := s.summaries.FindByDate(ctx, Day(day))
	if err != nil {
		return "", err
	}
	return infra.GenerateSummaryPDF(sum, s.cfg.PDFStoragePath)
}

func (s *reportService) EmailReport(ctx context.Context, day time.Time, toEmail string) error {
	if toEmail == "" {
		toEmail = s.cfg.ReportEmail
	}
	if toEmail == "" {
		return ErrNoRecipient
	}

	pdfPath, err := s.BuildPDF(ctx, day)
	if err != nil {
		return err
	}

	dateStr := Day(day).Format("2006-01-02")
	return s.dispatcher.EnqueueReport(ctx, worker.ReportJobPayload{
		Date:    dateStr,
		ToEmail: toEmail,
		Subject: fmt.Sprintf("Daily summary report — %s", dateStr),
		Body:    fmt.Sprintf("Attached is the daily summary report for %s.", dateStr),
		PDFPath: pdfPath,
	})
}
