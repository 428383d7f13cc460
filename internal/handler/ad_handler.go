package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/AdBoard/internal/domain"
	"github.com/GoArmGo/AdBoard/internal/dto"
	"github.com/GoArmGo/AdBoard/internal/usecase"
)

const imageFormField = "image"

// AdHandler обработчик HTTP-запросов для объявлений.
type AdHandler struct {
	adUseCase      usecase.AdUseCase
	uploadLimiter  chan struct{}
	uploadMaxBytes int64
	logger         *slog.Logger
}

// NewAdHandler создаёт новый экземпляр AdHandler.
// limiter ограничивает число одновременных загрузок картинок.
func NewAdHandler(
	uc usecase.AdUseCase,
	limiter chan struct{},
	uploadMaxBytes int64,
	logger *slog.Logger,
) *AdHandler {
	return &AdHandler{
		adUseCase:      uc,
		uploadLimiter:  limiter,
		uploadMaxBytes: uploadMaxBytes,
		logger:         logger,
	}
}

// List отдаёт страницу объявлений по убыванию цены, доступна анонимно.
func (h *AdHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.adUseCase.ListAds(r.Context(), r.URL.Query().Get("page"))
	if err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, dto.NewAdPage(page), h.logger)
}

func (h *AdHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, msgNotFound, h.logger)
		return
	}

	ad, err := h.adUseCase.GetAd(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, ad, h.logger)
}

func (h *AdHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AdRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}

	ad, err := h.adUseCase.CreateAd(r.Context(), UserFromContext(r.Context()), req.ToDomain())
	if err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusCreated, ad, h.logger)
}

// Update: PUT требует полное тело, PATCH только изменяемые поля.
func (h *AdHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, msgNotFound, h.logger)
		return
	}

	var changes domain.AdChanges
	if r.Method == http.MethodPatch {
		var req dto.AdPatchRequest
		if err := decodeAndValidate(r, &req); err != nil {
			respondWithDomainError(w, r, err, h.logger)
			return
		}
		changes = req.ToChanges()
	} else {
		var req dto.AdRequest
		if err := decodeAndValidate(r, &req); err != nil {
			respondWithDomainError(w, r, err, h.logger)
			return
		}
		changes = req.ToChanges()
	}

	ad, err := h.adUseCase.UpdateAd(r.Context(), UserFromContext(r.Context()), id, changes)
	if err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, ad, h.logger)
}

// UploadImage загружает картинку объявления из multipart поля image.
func (h *AdHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, msgNotFound, h.logger)
		return
	}

	select {
	case h.uploadLimiter <- struct{}{}:
		defer func() { <-h.uploadLimiter }()
	case <-r.Context().Done():
		respondWithError(w, http.StatusServiceUnavailable, "Сервер перегружен, попробуйте позже", h.logger)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.uploadMaxBytes)
	file, header, err := r.FormFile(imageFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondWithError(w, http.StatusRequestEntityTooLarge, "Файл слишком большой", h.logger)
			return
		}
		h.logger.Warn("missing image in upload", "ad_id", id, "error", err)
		respondWithDomainError(w, r, domain.NewValidationError(imageFormField, "No file was submitted."), h.logger)
		return
	}
	defer file.Close()

	ad, err := h.adUseCase.UploadImage(
		r.Context(),
		UserFromContext(r.Context()),
		id,
		file,
		header.Filename,
		header.Header.Get("Content-Type"),
	)
	if err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, dto.NewAdImageResponse(ad), h.logger)
}

func (h *AdHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, msgNotFound, h.logger)
		return
	}

	if err := h.adUseCase.DeleteAd(r.Context(), UserFromContext(r.Context()), id); err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}
	respondNoContent(w)
}
