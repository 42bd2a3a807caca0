package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Se02246/OrderMaster/internal/domain/apartment"
	"github.com/Se02246/OrderMaster/internal/handler/http/response"
	"github.com/Se02246/OrderMaster/internal/query"
	"github.com/go-chi/chi/v5"
)

type ApartmentHandler interface {
	ListApartments(w http.ResponseWriter, r *http.Request)
	GetApartment(w http.ResponseWriter, r *http.Request)
	CreateApartment(w http.ResponseWriter, r *http.Request)
	UpdateApartment(w http.ResponseWriter, r *http.Request)
	DeleteApartment(w http.ResponseWriter, r *http.Request)
}

type apartmentHandlerImpl struct {
	apartmentService apartment.ApartmentService
	caches           *query.Store
}

func NewApartmentHandler(apartmentService apartment.ApartmentService, caches *query.Store) ApartmentHandler {
	return &apartmentHandlerImpl{
		apartmentService: apartmentService,
		caches:           caches,
	}
}

// ListApartments implements ApartmentHandler
func (h *apartmentHandlerImpl) ListApartments(w http.ResponseWriter, r *http.Request) {
	results, err := h.caches.Apartments.Fetch(r.Context(), "all", h.apartmentService.ListApartments)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetApartment implements ApartmentHandler
func (h *apartmentHandlerImpl) GetApartment(w http.ResponseWriter, r *http.Request) {
	id, ok := apartmentID(w, r)
	if !ok {
		return
	}

	result, err := h.apartmentService.GetApartment(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateApartment implements ApartmentHandler
func (h *apartmentHandlerImpl) CreateApartment(w http.ResponseWriter, r *http.Request) {
	var req apartment.SaveApartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.apartmentService.CreateApartment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.caches.Flush()
	response.Created(w, "Apartment created successfully", result)
}

// UpdateApartment implements ApartmentHandler
func (h *apartmentHandlerImpl) UpdateApartment(w http.ResponseWriter, r *http.Request) {
	id, ok := apartmentID(w, r)
	if !ok {
		return
	}

	var req apartment.SaveApartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.apartmentService.UpdateApartment(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.caches.Flush()
	response.SuccessWithMessage(w, "Apartment updated successfully", result)
}

// DeleteApartment implements ApartmentHandler
func (h *apartmentHandlerImpl) DeleteApartment(w http.ResponseWriter, r *http.Request) {
	id, ok := apartmentID(w, r)
	if !ok {
		return
	}

	if err := h.apartmentService.DeleteApartment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	h.caches.Flush()
	response.SuccessWithMessage(w, "Apartment deleted successfully", nil)
}

func apartmentID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid apartment ID", nil)
		return 0, false
	}
	return id, true
}
