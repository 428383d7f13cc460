package handler

import (
	"log/slog"
	"net/http"

	"github.com/GoArmGo/AdBoard/internal/dto"
	"github.com/GoArmGo/AdBoard/internal/usecase"
)

// CategoryHandler обработчик HTTP-запросов для категорий.
type CategoryHandler struct {
	categoryUseCase usecase.CategoryUseCase
	logger          *slog.Logger
}

// NewCategoryHandler создаёт новый экземпляр CategoryHandler.
func NewCategoryHandler(uc usecase.CategoryUseCase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{categoryUseCase: uc, logger: logger}
}

// List отдаёт страницу категорий по параметру page.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.categoryUseCase.ListCategories(r.Context(), r.URL.Query().Get("page"))
	if err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, dto.NewCategoryPage(page), h.logger)
}

// Get отдаёт категорию по id.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, msgNotFound, h.logger)
		return
	}

	category, err := h.categoryUseCase.GetCategory(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, dto.NewCategoryShort(category), h.logger)
}

// Create создаёт категорию.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CategoryCreateRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}

	category := req.ToDomain()
	if err := h.categoryUseCase.CreateCategory(r.Context(), category); err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}

	h.logger.Info("category created", "category_id", category.ID)
	respondWithJSON(w, http.StatusCreated, dto.NewCategoryShort(category), h.logger)
}

// Update обновляет категорию, name и is_active обязательны.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, msgNotFound, h.logger)
		return
	}

	var req dto.CategoryUpdateRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}

	category := req.ToDomain(id)
	if err := h.categoryUseCase.UpdateCategory(r.Context(), category); err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, category, h.logger)
}

// Delete удаляет категорию.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, msgNotFound, h.logger)
		return
	}

	if err := h.categoryUseCase.DeleteCategory(r.Context(), id); err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}

	h.logger.Info("category deleted", "category_id", id)
	respondWithJSON(w, http.StatusOK, dto.CategoryDeleted{ID: id}, h.logger)
}
