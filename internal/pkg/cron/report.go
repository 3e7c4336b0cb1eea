package cron

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dezporcento/tipshare-backend-go/internal/config"
	"github.com/dezporcento/tipshare-backend-go/internal/domain/report"
)

// ReportJobs wires the daily report auto-send into the scheduler.
type ReportJobs struct {
	reportSvc    report.ReportService
	dispatchRepo report.DispatchRepository
	cfg          config.ReportConfig
}

func NewReportJobs(reportSvc report.ReportService, dispatchRepo report.DispatchRepository, cfg config.ReportConfig) *ReportJobs {
	return &ReportJobs{
		reportSvc:    reportSvc,
		dispatchRepo: dispatchRepo,
		cfg:          cfg,
	}
}

func (j *ReportJobs) RegisterJobs(scheduler *Scheduler) {
	if !j.cfg.AutoSend {
		return
	}
	scheduler.AddJob("auto_send_daily_report", 1*time.Hour, j.AutoSendYesterdayReport)
}

// AutoSendYesterdayReport sends yesterday's report once, at the configured
// hour, skipping days that were already dispatched or have no records.
func (j *ReportJobs) AutoSendYesterdayReport(ctx context.Context) error {
	if time.Now().Hour() != j.cfg.AutoSendHour {
		return nil
	}

	workDate := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	sent, err := j.dispatchRepo.ExistsForDate(ctx, workDate)
	if err != nil {
		return err
	}
	if sent {
		return nil
	}

	slog.Info("Cron: sending daily report", "work_date", workDate)

	_, err = j.reportSvc.Send(ctx, report.SendReportRequest{WorkDate: workDate})
	if errors.Is(err, report.ErrNoRecordsForDay) {
		slog.Info("Cron: no records for work day, skipping report", "work_date", workDate)
		return nil
	}
	return err
}
