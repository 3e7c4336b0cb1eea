package record

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dezporcento/tipshare-backend-go/internal/domain/audit"
	"github.com/dezporcento/tipshare-backend-go/internal/domain/record"
)

// fakeRecordRepo overrides only the methods a test exercises; calling an
// unset method panics through the embedded nil interface.
type fakeRecordRepo struct {
	record.WorkRecordRepository

	records    map[string]record.WorkRecord
	byNameDate map[string]*record.WorkRecord
	created    *record.WorkRecord
	updated    *record.WorkRecord
	deleted    []string
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{
		records:    make(map[string]record.WorkRecord),
		byNameDate: make(map[string]*record.WorkRecord),
	}
}

func (f *fakeRecordRepo) Create(_ context.Context, rec record.WorkRecord) (record.WorkRecord, error) {
	rec.ID = "rec-1"
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	f.created = &rec
	return rec, nil
}

func (f *fakeRecordRepo) GetByID(_ context.Context, id string) (record.WorkRecord, error) {
	rec, ok := f.records[id]
	if !ok {
		return record.WorkRecord{}, record.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakeRecordRepo) GetByNameAndDate(_ context.Context, name, workDate string) (*record.WorkRecord, error) {
	return f.byNameDate[name+"|"+workDate], nil
}

func (f *fakeRecordRepo) Update(_ context.Context, rec record.WorkRecord) error {
	f.updated = &rec
	return nil
}

func (f *fakeRecordRepo) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeAuditService captures recorded actions.
type fakeAuditService struct {
	actions []audit.Action
}

func (f *fakeAuditService) Record(_ context.Context, action audit.Action, _ string, _ *string, _, _ any) {
	f.actions = append(f.actions, action)
}

func (f *fakeAuditService) List(context.Context, audit.ListFilter) ([]audit.EntryResponse, error) {
	return nil, nil
}

func (f *fakeAuditService) Clear(context.Context) error { return nil }

const testRecordID = "0b9fc90f-4a33-4bd7-8a4f-95e90c2055a1"

func validCreateRequest() record.CreateWorkRecordRequest {
	return record.CreateWorkRecordRequest{
		Name:           "Ana",
		TipShareAmount: "100.00",
		WorkDate:       "2024-01-10",
		CheckIn:        "08:00",
		CheckOut:       "17:00",
	}
}

func TestCreate_Success(t *testing.T) {
	repo := newFakeRecordRepo()
	auditSvc := &fakeAuditService{}
	svc := NewWorkRecordService(repo, auditSvc)

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "rec-1", resp.ID)
	assert.Equal(t, "Ana", resp.Name)
	assert.Equal(t, "pix", resp.PaymentMethod, "payment method defaults to pix")
	assert.Equal(t, []audit.Action{audit.ActionCreate}, auditSvc.actions)
}

func TestCreate_DuplicateNameAndDate(t *testing.T) {
	repo := newFakeRecordRepo()
	repo.byNameDate["Ana|2024-01-10"] = &record.WorkRecord{ID: "existing"}
	auditSvc := &fakeAuditService{}
	svc := NewWorkRecordService(repo, auditSvc)

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, record.ErrDuplicateRecord)
	assert.Nil(t, repo.created)
	assert.Empty(t, auditSvc.actions, "rejected create must not be audited")
}

func TestCreate_ValidationError(t *testing.T) {
	svc := NewWorkRecordService(newFakeRecordRepo(), &fakeAuditService{})

	req := validCreateRequest()
	req.TipShareAmount = "abc"
	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestUpdate_MergesOnlyProvidedFields(t *testing.T) {
	repo := newFakeRecordRepo()
	repo.records[testRecordID] = record.WorkRecord{
		ID:             testRecordID,
		Name:           "Ana",
		TipShareAmount: "100.00",
		WorkDate:       "2024-01-10",
		CheckIn:        "08:00",
		CheckOut:       "17:00",
		PaymentMethod:  "pix",
	}
	auditSvc := &fakeAuditService{}
	svc := NewWorkRecordService(repo, auditSvc)

	amount := "150.50"
	paid := true
	_, err := svc.Update(context.Background(), record.UpdateWorkRecordRequest{
		ID:             testRecordID,
		TipShareAmount: &amount,
		Paid:           &paid,
	})
	require.NoError(t, err)

	require.NotNil(t, repo.updated)
	assert.Equal(t, "150.50", repo.updated.TipShareAmount)
	assert.True(t, repo.updated.Paid)
	assert.Equal(t, "Ana", repo.updated.Name, "untouched field kept")
	assert.Equal(t, "08:00", repo.updated.CheckIn, "untouched field kept")
	assert.Equal(t, []audit.Action{audit.ActionUpdate}, auditSvc.actions)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewWorkRecordService(newFakeRecordRepo(), &fakeAuditService{})

	name := "Bia"
	_, err := svc.Update(context.Background(), record.UpdateWorkRecordRequest{
		ID:   "b6b6cf0a-2f6b-4a86-9c5a-3f3a1c9a7d42",
		Name: &name,
	})
	assert.ErrorIs(t, err, record.ErrRecordNotFound)
}

func TestDelete_RecordsAudit(t *testing.T) {
	repo := newFakeRecordRepo()
	repo.records[testRecordID] = record.WorkRecord{ID: testRecordID, Name: "Ana"}
	auditSvc := &fakeAuditService{}
	svc := NewWorkRecordService(repo, auditSvc)

	require.NoError(t, svc.Delete(context.Background(), testRecordID))
	assert.Equal(t, []string{testRecordID}, repo.deleted)
	assert.Equal(t, []audit.Action{audit.ActionDelete}, auditSvc.actions)
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewWorkRecordService(newFakeRecordRepo(), &fakeAuditService{})

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, record.ErrRecordNotFound)
}
