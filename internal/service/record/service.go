package record

import (
	"context"
	"fmt"

	"github.com/dezporcento/tipshare-backend-go/internal/domain/audit"
	"github.com/dezporcento/tipshare-backend-go/internal/domain/record"
)

const tableName = "work_records"

type WorkRecordServiceImpl struct {
	recordRepo record.WorkRecordRepository
	auditSvc   audit.AuditService
}

func NewWorkRecordService(recordRepo record.WorkRecordRepository, auditSvc audit.AuditService) record.WorkRecordService {
	return &WorkRecordServiceImpl{
		recordRepo: recordRepo,
		auditSvc:   auditSvc,
	}
}

// Create inserts a new daily entry. One employee gets at most one record
// per work day; a second entry for the same name+date is rejected.
func (s *WorkRecordServiceImpl) Create(ctx context.Context, req record.CreateWorkRecordRequest) (record.WorkRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return record.WorkRecordResponse{}, err
	}

	existing, err := s.recordRepo.GetByNameAndDate(ctx, req.Name, req.WorkDate)
	if err != nil {
		return record.WorkRecordResponse{}, fmt.Errorf("failed to check for duplicate record: %w", err)
	}
	if existing != nil {
		return record.WorkRecordResponse{}, record.ErrDuplicateRecord
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "pix"
	}

	rec := record.WorkRecord{
		Name:           req.Name,
		TipShareAmount: req.TipShareAmount,
		WorkDate:       req.WorkDate,
		CheckIn:        req.CheckIn,
		CheckOut:       req.CheckOut,
		Advance:        req.Advance,
		Paid:           req.Paid,
		PaymentMethod:  paymentMethod,
		Note:           req.Note,
	}
	if req.AdvanceType != nil {
		at := record.AdvanceType(*req.AdvanceType)
		rec.AdvanceType = &at
	}

	created, err := s.recordRepo.Create(ctx, rec)
	if err != nil {
		return record.WorkRecordResponse{}, err
	}

	resp := record.ToResponse(created)
	s.auditSvc.Record(ctx, audit.ActionCreate, tableName, &created.ID, nil, resp)
	return resp, nil
}

func (s *WorkRecordServiceImpl) Get(ctx context.Context, id string) (record.WorkRecordResponse, error) {
	rec, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		return record.WorkRecordResponse{}, err
	}
	return record.ToResponse(rec), nil
}

func (s *WorkRecordServiceImpl) Update(ctx context.Context, req record.UpdateWorkRecordRequest) (record.WorkRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return record.WorkRecordResponse{}, err
	}

	rec, err := s.recordRepo.GetByID(ctx, req.ID)
	if err != nil {
		return record.WorkRecordResponse{}, err
	}
	before := record.ToResponse(rec)

	if req.Name != nil {
		rec.Name = *req.Name
	}
	if req.TipShareAmount != nil {
		rec.TipShareAmount = *req.TipShareAmount
	}
	if req.WorkDate != nil {
		rec.WorkDate = *req.WorkDate
	}
	if req.CheckIn != nil {
		rec.CheckIn = *req.CheckIn
	}
	if req.CheckOut != nil {
		rec.CheckOut = *req.CheckOut
	}
	if req.Advance != nil {
		rec.Advance = req.Advance
	}
	if req.AdvanceType != nil {
		at := record.AdvanceType(*req.AdvanceType)
		rec.AdvanceType = &at
	}
	if req.Paid != nil {
		rec.Paid = *req.Paid
	}
	if req.PaymentMethod != nil {
		rec.PaymentMethod = *req.PaymentMethod
	}
	if req.Note != nil {
		rec.Note = *req.Note
	}

	if err := s.recordRepo.Update(ctx, rec); err != nil {
		return record.WorkRecordResponse{}, err
	}

	resp := record.ToResponse(rec)
	s.auditSvc.Record(ctx, audit.ActionUpdate, tableName, &rec.ID, before, resp)
	return resp, nil
}

func (s *WorkRecordServiceImpl) Delete(ctx context.Context, id string) error {
	rec, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.recordRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.auditSvc.Record(ctx, audit.ActionDelete, tableName, &id, record.ToResponse(rec), nil)
	return nil
}

func (s *WorkRecordServiceImpl) List(ctx context.Context, filter record.ListWorkRecordsFilter) ([]record.WorkRecordResponse, error) {
	records, err := s.recordRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]record.WorkRecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, record.ToResponse(rec))
	}
	return responses, nil
}

func (s *WorkRecordServiceImpl) DistinctNames(ctx context.Context) ([]string, error) {
	return s.recordRepo.DistinctNames(ctx)
}

func (s *WorkRecordServiceImpl) GetDayNote(ctx context.Context, workDate string) (record.DayNoteResponse, error) {
	note, err := s.recordRepo.GetDayNote(ctx, workDate)
	if err != nil {
		return record.DayNoteResponse{}, err
	}
	return record.DayNoteResponse{
		WorkDate:  note.WorkDate,
		Note:      note.Note,
		UpdatedAt: note.UpdatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

func (s *WorkRecordServiceImpl) UpsertDayNote(ctx context.Context, req record.UpsertDayNoteRequest) (record.DayNoteResponse, error) {
	if err := req.Validate(); err != nil {
		return record.DayNoteResponse{}, err
	}

	note, err := s.recordRepo.UpsertDayNote(ctx, record.DayNote{
		WorkDate: req.WorkDate,
		Note:     req.Note,
	})
	if err != nil {
		return record.DayNoteResponse{}, err
	}

	s.auditSvc.Record(ctx, audit.ActionUpdate, "day_notes", &note.WorkDate, nil, req)
	return record.DayNoteResponse{
		WorkDate:  note.WorkDate,
		Note:      note.Note,
		UpdatedAt: note.UpdatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}
