package handler

import (
	"log/slog"
	"net/http"

	"github.com/GoArmGo/AdBoard/internal/domain"
	"github.com/GoArmGo/AdBoard/internal/dto"
	"github.com/GoArmGo/AdBoard/internal/usecase"
)

// SelectionHandler обработчик HTTP-запросов для подборок.
type SelectionHandler struct {
	selectionUseCase usecase.SelectionUseCase
	logger           *slog.Logger
}

// NewSelectionHandler создаёт новый экземпляр SelectionHandler.
func NewSelectionHandler(uc usecase.SelectionUseCase, logger *slog.Logger) *SelectionHandler {
	return &SelectionHandler{selectionUseCase: uc, logger: logger}
}

func (h *SelectionHandler) List(w http.ResponseWriter, r *http.Request) {
	selections, err := h.selectionUseCase.ListSelections(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, dto.NewSelectionList(selections), h.logger)
}

func (h *SelectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, msgNotFound, h.logger)
		return
	}

	selection, err := h.selectionUseCase.GetSelection(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, selection, h.logger)
}

// Create создаёт подборку, владельцем подборки всегда становится текущий пользователь.
func (h *SelectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectionRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}

	var items []int64
	if req.Items != nil {
		items = *req.Items
	}

	selection, err := h.selectionUseCase.CreateSelection(r.Context(), UserFromContext(r.Context()), req.Name, items)
	if err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusCreated, dto.NewSelectionResponse(selection), h.logger)
}

func (h *SelectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, msgNotFound, h.logger)
		return
	}

	var changes domain.SelectionChanges
	if r.Method == http.MethodPatch {
		var req dto.SelectionPatchRequest
		if err := decodeAndValidate(r, &req); err != nil {
			respondWithDomainError(w, r, err, h.logger)
			return
		}
		changes = req.ToChanges()
	} else {
		var req dto.SelectionRequest
		if err := decodeAndValidate(r, &req); err != nil {
			respondWithDomainError(w, r, err, h.logger)
			return
		}
		changes = req.ToChanges()
	}

	selection, err := h.selectionUseCase.UpdateSelection(r.Context(), UserFromContext(r.Context()), id, changes)
	if err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, dto.NewSelectionResponse(selection), h.logger)
}

func (h *SelectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, msgNotFound, h.logger)
		return
	}

	if err := h.selectionUseCase.DeleteSelection(r.Context(), UserFromContext(r.Context()), id); err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}
	respondNoContent(w)
}
