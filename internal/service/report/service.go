package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/dezporcento/tipshare-backend-go/internal/domain/audit"
	"github.com/dezporcento/tipshare-backend-go/internal/domain/record"
	"github.com/dezporcento/tipshare-backend-go/internal/domain/report"
	"github.com/dezporcento/tipshare-backend-go/internal/domain/settings"
	"github.com/dezporcento/tipshare-backend-go/internal/pkg/email"
	"github.com/dezporcento/tipshare-backend-go/internal/pkg/storage"
)

type ReportServiceImpl struct {
	recordRepo   record.WorkRecordRepository
	settingsRepo settings.SettingsRepository
	dispatchRepo report.DispatchRepository
	emailSvc     email.EmailService
	fileStorage  storage.FileStorage
	auditSvc     audit.AuditService
}

func NewReportService(
	recordRepo record.WorkRecordRepository,
	settingsRepo settings.SettingsRepository,
	dispatchRepo report.DispatchRepository,
	emailSvc email.EmailService,
	fileStorage storage.FileStorage,
	auditSvc audit.AuditService,
) report.ReportService {
	return &ReportServiceImpl{
		recordRepo:   recordRepo,
		settingsRepo: settingsRepo,
		dispatchRepo: dispatchRepo,
		emailSvc:     emailSvc,
		fileStorage:  fileStorage,
		auditSvc:     auditSvc,
	}
}

func (s *ReportServiceImpl) Send(ctx context.Context, req report.SendReportRequest) (*report.SendReportResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	mailCfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load mail settings: %w", err)
	}
	if mailCfg == nil {
		return nil, settings.ErrNotConfigured
	}

	data, err := s.dayData(ctx, req.WorkDate)
	if err != nil {
		return nil, err
	}

	artifacts := make([]*report.Artifact, 0, len(report.Formats))
	artifactURLs := make([]string, 0, len(report.Formats))
	links := make([]email.ArtifactLink, 0, len(report.Formats))
	for _, format := range report.Formats {
		artifact, err := generateArtifact(data, format)
		if err != nil {
			return nil, err
		}

		storedPath, err := s.fileStorage.Save(ctx, bytes.NewReader(artifact.Data), path.Join("reports", req.WorkDate, artifact.FileName))
		if err != nil {
			return nil, fmt.Errorf("failed to store %s artifact: %w", format, err)
		}

		url := s.fileStorage.URL(storedPath)
		artifacts = append(artifacts, artifact)
		artifactURLs = append(artifactURLs, url)
		links = append(links, email.ArtifactLink{
			Label: strings.ToUpper(string(format)),
			URL:   url,
		})
	}

	emailData := email.ReportEmailData{
		WorkDate:      data.WorkDate,
		Weekday:       data.Weekday,
		EmployeeCount: data.EmployeeCount,
		Total:         data.Total.StringFixed(2),
		DayNote:       data.DayNote,
		Rows:          emailRows(data.Records),
		ArtifactURLs:  links,
		GeneratedAt:   time.Now().Format("2006-01-02 15:04:05"),
	}
	attachments := make([]email.Attachment, 0, len(artifacts))
	for _, artifact := range artifacts {
		attachments = append(attachments, email.Attachment{
			FileName:    artifact.FileName,
			ContentType: artifact.ContentType,
			Data:        artifact.Data,
		})
	}

	sender := email.Sender{From: mailCfg.SenderEmail, AppPassword: mailCfg.AppPassword}
	sendErr := s.emailSvc.SendDailyReport(sender, mailCfg.RecipientEmail, emailData, attachments)

	dispatch, err := s.dispatchRepo.Create(ctx, report.Dispatch{
		WorkDate:      data.WorkDate,
		Weekday:       data.Weekday,
		EmployeeCount: data.EmployeeCount,
		TotalAmount:   data.Total,
		EmailSent:     sendErr == nil,
		SentAt:        time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record report dispatch: %w", err)
	}

	if sendErr != nil {
		return nil, fmt.Errorf("failed to e-mail report: %w", sendErr)
	}

	resp := &report.SendReportResponse{
		Dispatch:      report.ToDispatchResponse(dispatch),
		RecipientMail: mailCfg.RecipientEmail,
		ArtifactURLs:  artifactURLs,
	}
	s.auditSvc.Record(ctx, audit.ActionSendReport, "report_dispatches", &dispatch.ID, nil, resp.Dispatch)
	return resp, nil
}

func (s *ReportServiceImpl) Artifact(ctx context.Context, workDate string, format report.Format) (*report.Artifact, error) {
	if !format.Valid() {
		return nil, report.ErrUnknownFormat
	}

	data, err := s.dayData(ctx, workDate)
	if err != nil {
		return nil, err
	}
	return generateArtifact(data, format)
}

func (s *ReportServiceImpl) ListDispatches(ctx context.Context) ([]report.DispatchResponse, error) {
	dispatches, err := s.dispatchRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]report.DispatchResponse, 0, len(dispatches))
	for _, d := range dispatches {
		responses = append(responses, report.ToDispatchResponse(d))
	}
	return responses, nil
}

// dayData collects the records and shared note for one work day. A day
// with no records has no report.
func (s *ReportServiceImpl) dayData(ctx context.Context, workDate string) (reportData, error) {
	records, err := s.recordRepo.ListByDate(ctx, workDate)
	if err != nil {
		return reportData{}, fmt.Errorf("failed to load records for %s: %w", workDate, err)
	}
	if len(records) == 0 {
		return reportData{}, report.ErrNoRecordsForDay
	}

	dayNote := ""
	note, err := s.recordRepo.GetDayNote(ctx, workDate)
	switch {
	case err == nil:
		dayNote = note.Note
	case errors.Is(err, record.ErrDayNoteNotFound):
	default:
		return reportData{}, fmt.Errorf("failed to load day note for %s: %w", workDate, err)
	}

	return buildReportData(workDate, dayNote, records), nil
}

func emailRows(records []record.WorkRecord) []email.ReportRow {
	rows := make([]email.ReportRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, email.ReportRow{
			Name:     rec.Name,
			Amount:   parseAmount(rec.TipShareAmount).StringFixed(2),
			CheckIn:  rec.CheckIn,
			CheckOut: rec.CheckOut,
			Note:     rec.Note,
		})
	}
	return rows
}
