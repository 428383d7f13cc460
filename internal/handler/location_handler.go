package handler

import (
	"log/slog"
	"net/http"

	"github.com/GoArmGo/AdBoard/internal/dto"
	"github.com/GoArmGo/AdBoard/internal/usecase"
)

// LocationHandler обработчик HTTP-запросов для адресов.
type LocationHandler struct {
	locationUseCase usecase.LocationUseCase
	logger          *slog.Logger
}

// NewLocationHandler создаёт новый экземпляр LocationHandler.
func NewLocationHandler(uc usecase.LocationUseCase, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{locationUseCase: uc, logger: logger}
}

func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	locations, err := h.locationUseCase.ListLocations(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, locations, h.logger)
}

func (h *LocationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, msgNotFound, h.logger)
		return
	}

	location, err := h.locationUseCase.GetLocation(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, location, h.logger)
}

func (h *LocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.LocationRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}

	location := req.ToDomain(0)
	if err := h.locationUseCase.CreateLocation(r.Context(), location); err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusCreated, location, h.logger)
}

// Update: тело накладывается на текущий адрес, при PUT поле name обязательно.
func (h *LocationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, msgNotFound, h.logger)
		return
	}

	current, err := h.locationUseCase.GetLocation(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}

	req := dto.LocationRequestFrom(current)
	if r.Method == http.MethodPut {
		// name при PUT обязателен, координаты без значения в теле сохраняются
		req.Name = ""
	}

	if err := decodeAndValidate(r, &req); err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}

	location := req.ToDomain(id)
	if err := h.locationUseCase.UpdateLocation(r.Context(), location); err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, location, h.logger)
}

func (h *LocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, msgNotFound, h.logger)
		return
	}

	if err := h.locationUseCase.DeleteLocation(r.Context(), id); err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}
	respondNoContent(w)
}
