package worker

// report_worker.go
// Processes daily-report jobs from QueueReport: sends the summary PDF to the
// configured recipient via SMTP, behind a circuit breaker so a dead relay
// fast-fails into the DLQ.

import (
	"context"
	"encoding/json"

	"github.com/varunreddy1024/ledger-backend/internal/infra"

	"github.com/rs/zerolog/log"
)

// ReportJobPayload is the job envelope sent to QueueReport.
type ReportJobPayload struct {
	Date    string `json:"date"` // YYYY-MM-DD
	ToEmail string `json:"to_email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	PDFPath string `json:"pdf_path"`
}

// ReportWorker sends daily summary report emails.
type ReportWorker struct {
	mailer *infra.Mailer
	cb     *infra.CircuitBreaker
}

func NewReportWorker(mailer *infra.Mailer, cb *infra.CircuitBreaker) *ReportWorker {
	return &ReportWorker{mailer: mailer, cb: cb}
}

func (w *ReportWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ReportJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return err
	}

	err := w.cb.Execute(func() error {
		return w.mailer.SendReport(payload.ToEmail, payload.Subject, payload.Body, payload.PDFPath)
	})
	if err != nil {
		log.Error().
			Str("date", payload.Date).
			Str("to", payload.ToEmail).
			Err(err).
			Msg("report email failed")
		return err
	}

	log.Info().Str("date", payload.Date).Str("to", payload.ToEmail).Msg("report email sent")
	return nil
}
