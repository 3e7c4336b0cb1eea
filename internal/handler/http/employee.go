package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dezporcento/tipshare-backend-go/internal/domain/employee"
	"github.com/dezporcento/tipshare-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.employeeService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee registered", resp)
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.employeeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq employee.UpdateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	resp, err := h.employeeService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", resp)
}

// Delete implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee removed", nil)
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
