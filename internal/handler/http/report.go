package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dezporcento/tipshare-backend-go/internal/domain/report"
	"github.com/dezporcento/tipshare-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Send(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
	ListDispatches(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Send implements ReportHandler.
func (h *ReportHandlerImpl) Send(w http.ResponseWriter, r *http.Request) {
	var sendReq report.SendReportRequest

	if err := json.NewDecoder(r.Body).Decode(&sendReq); err != nil {
		slog.Error("Send report decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.reportService.Send(r.Context(), sendReq)
	if err != nil {
		slog.Error("Send report service error", "error", err, "work_date", sendReq.WorkDate)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Report sent", resp)
}

// Download implements ReportHandler. Streams one freshly generated artifact.
func (h *ReportHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	workDate := chi.URLParam(r, "workDate")
	format := report.Format(chi.URLParam(r, "format"))

	artifact, err := h.reportService.Artifact(r.Context(), workDate, format)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.FileName))
	if _, err := w.Write(artifact.Data); err != nil {
		slog.Error("Download report write error", "error", err, "file", artifact.FileName)
	}
}

// ListDispatches implements ReportHandler.
func (h *ReportHandlerImpl) ListDispatches(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reportService.ListDispatches(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
