package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dezporcento/tipshare-backend-go/internal/domain/record"
	"github.com/dezporcento/tipshare-backend-go/internal/handler/http/response"
)

type WorkRecordHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	DistinctNames(w http.ResponseWriter, r *http.Request)
	GetDayNote(w http.ResponseWriter, r *http.Request)
	UpsertDayNote(w http.ResponseWriter, r *http.Request)
}

type WorkRecordHandlerImpl struct {
	recordService record.WorkRecordService
}

func NewWorkRecordHandler(recordService record.WorkRecordService) WorkRecordHandler {
	return &WorkRecordHandlerImpl{recordService: recordService}
}

// Create implements WorkRecordHandler.
func (h *WorkRecordHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq record.CreateWorkRecordRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create work record decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.recordService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create work record service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work record created", resp)
}

// Get implements WorkRecordHandler.
func (h *WorkRecordHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.recordService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Update implements WorkRecordHandler.
func (h *WorkRecordHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq record.UpdateWorkRecordRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update work record decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	resp, err := h.recordService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update work record service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work record updated", resp)
}

// Delete implements WorkRecordHandler.
func (h *WorkRecordHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.recordService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete work record service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work record deleted", nil)
}

// List implements WorkRecordHandler.
func (h *WorkRecordHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := record.ListWorkRecordsFilter{
		WorkDate: r.URL.Query().Get("work_date"),
	}

	resp, err := h.recordService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// DistinctNames implements WorkRecordHandler.
func (h *WorkRecordHandlerImpl) DistinctNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.recordService.DistinctNames(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, names)
}

// GetDayNote implements WorkRecordHandler.
func (h *WorkRecordHandlerImpl) GetDayNote(w http.ResponseWriter, r *http.Request) {
	workDate := chi.URLParam(r, "workDate")

	resp, err := h.recordService.GetDayNote(r.Context(), workDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// UpsertDayNote implements WorkRecordHandler.
func (h *WorkRecordHandlerImpl) UpsertDayNote(w http.ResponseWriter, r *http.Request) {
	var noteReq record.UpsertDayNoteRequest

	if err := json.NewDecoder(r.Body).Decode(&noteReq); err != nil {
		slog.Error("Upsert day note decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.recordService.UpsertDayNote(r.Context(), noteReq)
	if err != nil {
		slog.Error("Upsert day note service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Day note saved", resp)
}
