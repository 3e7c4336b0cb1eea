package report

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dezporcento/tipshare-backend-go/internal/domain/audit"
	"github.com/dezporcento/tipshare-backend-go/internal/domain/record"
	"github.com/dezporcento/tipshare-backend-go/internal/domain/report"
	"github.com/dezporcento/tipshare-backend-go/internal/domain/settings"
	"github.com/dezporcento/tipshare-backend-go/internal/pkg/email"
)

type fakeRecordRepo struct {
	record.WorkRecordRepository

	recordsByDate map[string][]record.WorkRecord
	notesByDate   map[string]record.DayNote
}

func (f *fakeRecordRepo) ListByDate(_ context.Context, workDate string) ([]record.WorkRecord, error) {
	return f.recordsByDate[workDate], nil
}

func (f *fakeRecordRepo) GetDayNote(_ context.Context, workDate string) (record.DayNote, error) {
	note, ok := f.notesByDate[workDate]
	if !ok {
		return record.DayNote{}, record.ErrDayNoteNotFound
	}
	return note, nil
}

type fakeSettingsRepo struct {
	current *settings.MailSettings
}

func (f *fakeSettingsRepo) Get(context.Context) (*settings.MailSettings, error) {
	return f.current, nil
}

func (f *fakeSettingsRepo) Save(_ context.Context, s settings.MailSettings) (settings.MailSettings, error) {
	f.current = &s
	return s, nil
}

type fakeDispatchRepo struct {
	created []report.Dispatch
}

func (f *fakeDispatchRepo) Create(_ context.Context, d report.Dispatch) (report.Dispatch, error) {
	d.ID = "dispatch-1"
	f.created = append(f.created, d)
	return d, nil
}

func (f *fakeDispatchRepo) List(context.Context) ([]report.Dispatch, error) {
	return f.created, nil
}

func (f *fakeDispatchRepo) ExistsForDate(context.Context, string) (bool, error) {
	return false, nil
}

type fakeEmailService struct {
	sent []email.ReportEmailData
	atts [][]email.Attachment
	err  error
}

func (f *fakeEmailService) SendDailyReport(_ email.Sender, _ string, data email.ReportEmailData, attachments []email.Attachment) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	f.atts = append(f.atts, attachments)
	return nil
}

type fakeStorage struct {
	saved map[string][]byte
}

func (f *fakeStorage) Save(_ context.Context, content io.Reader, path string) (string, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	if f.saved == nil {
		f.saved = make(map[string][]byte)
	}
	f.saved[path] = data
	return path, nil
}

func (f *fakeStorage) Open(_ context.Context, path string) (io.ReadCloser, error) {
	data, ok := f.saved[path]
	if !ok {
		return nil, errors.New("not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeStorage) Delete(_ context.Context, path string) error {
	delete(f.saved, path)
	return nil
}

func (f *fakeStorage) URL(path string) string {
	return "http://localhost:8080/downloads/" + path
}

func (f *fakeStorage) Exists(_ context.Context, path string) (bool, error) {
	_, ok := f.saved[path]
	return ok, nil
}

type noopAuditService struct {
	actions []audit.Action
}

func (n *noopAuditService) Record(_ context.Context, action audit.Action, _ string, _ *string, _, _ any) {
	n.actions = append(n.actions, action)
}

func (n *noopAuditService) List(context.Context, audit.ListFilter) ([]audit.EntryResponse, error) {
	return nil, nil
}

func (n *noopAuditService) Clear(context.Context) error { return nil }

type testDeps struct {
	recordRepo   *fakeRecordRepo
	settingsRepo *fakeSettingsRepo
	dispatchRepo *fakeDispatchRepo
	emailSvc     *fakeEmailService
	fileStorage  *fakeStorage
	auditSvc     *noopAuditService
}

func newTestService(withSettings bool) (report.ReportService, *testDeps) {
	deps := &testDeps{
		recordRepo: &fakeRecordRepo{
			recordsByDate: map[string][]record.WorkRecord{
				"2024-01-10": sampleRecords(),
			},
			notesByDate: map[string]record.DayNote{
				"2024-01-10": {WorkDate: "2024-01-10", Note: "busy night"},
			},
		},
		settingsRepo: &fakeSettingsRepo{},
		dispatchRepo: &fakeDispatchRepo{},
		emailSvc:     &fakeEmailService{},
		fileStorage:  &fakeStorage{},
		auditSvc:     &noopAuditService{},
	}
	if withSettings {
		deps.settingsRepo.current = &settings.MailSettings{
			ID:             "1",
			RecipientEmail: "boss@example.com",
			SenderEmail:    "reports@example.com",
			AppPassword:    "app-password",
		}
	}

	svc := NewReportService(
		deps.recordRepo,
		deps.settingsRepo,
		deps.dispatchRepo,
		deps.emailSvc,
		deps.fileStorage,
		deps.auditSvc,
	)
	return svc, deps
}

func TestSend_Success(t *testing.T) {
	svc, deps := newTestService(true)

	resp, err := svc.Send(context.Background(), report.SendReportRequest{WorkDate: "2024-01-10"})
	require.NoError(t, err)

	assert.Equal(t, "boss@example.com", resp.RecipientMail)
	assert.Len(t, resp.ArtifactURLs, len(report.Formats))
	assert.Len(t, deps.fileStorage.saved, len(report.Formats))

	require.Len(t, deps.emailSvc.sent, 1)
	sent := deps.emailSvc.sent[0]
	assert.Equal(t, "2024-01-10", sent.WorkDate)
	assert.Equal(t, "busy night", sent.DayNote)
	assert.Len(t, sent.Rows, 2)
	assert.Len(t, deps.emailSvc.atts[0], len(report.Formats))

	require.Len(t, deps.dispatchRepo.created, 1)
	dispatch := deps.dispatchRepo.created[0]
	assert.Equal(t, "2024-01-10", dispatch.WorkDate)
	assert.Equal(t, 2, dispatch.EmployeeCount)
	assert.Equal(t, "180.50", dispatch.TotalAmount.StringFixed(2))
	assert.True(t, dispatch.EmailSent)

	assert.Equal(t, []audit.Action{audit.ActionSendReport}, deps.auditSvc.actions)
}

func TestSend_NoRecordsForDay(t *testing.T) {
	svc, deps := newTestService(true)

	_, err := svc.Send(context.Background(), report.SendReportRequest{WorkDate: "2024-01-11"})
	assert.ErrorIs(t, err, report.ErrNoRecordsForDay)
	assert.Empty(t, deps.dispatchRepo.created)
}

func TestSend_NotConfigured(t *testing.T) {
	svc, _ := newTestService(false)

	_, err := svc.Send(context.Background(), report.SendReportRequest{WorkDate: "2024-01-10"})
	assert.ErrorIs(t, err, settings.ErrNotConfigured)
}

func TestSend_EmailFailureStillRecordsDispatch(t *testing.T) {
	svc, deps := newTestService(true)
	deps.emailSvc.err = errors.New("smtp down")

	_, err := svc.Send(context.Background(), report.SendReportRequest{WorkDate: "2024-01-10"})
	assert.Error(t, err)

	require.Len(t, deps.dispatchRepo.created, 1)
	assert.False(t, deps.dispatchRepo.created[0].EmailSent)
}

func TestSend_ValidationError(t *testing.T) {
	svc, _ := newTestService(true)

	_, err := svc.Send(context.Background(), report.SendReportRequest{WorkDate: "10/01/2024"})
	assert.Error(t, err)
}

func TestArtifact_Success(t *testing.T) {
	svc, _ := newTestService(true)

	artifact, err := svc.Artifact(context.Background(), "2024-01-10", report.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "tipshare-report-2024-01-10.csv", artifact.FileName)
	assert.Contains(t, string(artifact.Data), "Ana")
}

func TestArtifact_UnknownFormat(t *testing.T) {
	svc, _ := newTestService(true)

	_, err := svc.Artifact(context.Background(), "2024-01-10", report.Format("docx"))
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestArtifact_NoRecords(t *testing.T) {
	svc, _ := newTestService(true)

	_, err := svc.Artifact(context.Background(), "2024-01-11", report.FormatJSON)
	assert.ErrorIs(t, err, report.ErrNoRecordsForDay)
}

func TestListDispatches(t *testing.T) {
	svc, deps := newTestService(true)

	_, err := svc.Send(context.Background(), report.SendReportRequest{WorkDate: "2024-01-10"})
	require.NoError(t, err)

	dispatches, err := svc.ListDispatches(context.Background())
	require.NoError(t, err)
	require.Len(t, dispatches, 1)
	assert.Equal(t, "dispatch-1", dispatches[0].ID)
	assert.Equal(t, deps.dispatchRepo.created[0].WorkDate, dispatches[0].WorkDate)
}
