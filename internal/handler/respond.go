package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/GoArmGo/AdBoard/internal/domain"
	"github.com/GoArmGo/AdBoard/internal/dto"
	"github.com/go-chi/chi/v5"
)

const (
	msgNotFound           = "Not found."
	msgNotAuthenticated   = "Authentication credentials were not provided."
	msgInvalidCredentials = "No active account found with the given credentials"
	msgTokenInvalid       = "Token is invalid or expired"
	msgInternal           = "Внутренняя ошибка сервера"
)

// respondWithJSON отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithError отправляет JSON-ответ с ошибкой.
func respondWithError(w http.ResponseWriter, code int, message string, logger *slog.Logger) {
	respondWithJSON(w, code, map[string]string{"error": message}, logger)
}

func respondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// respondWithDomainError переводит ошибку use case'а в HTTP-ответ
func respondWithDomainError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	var (
		validationErr *domain.ValidationError
		forbiddenErr  *domain.ForbiddenError
	)

	switch {
	case errors.As(err, &validationErr):
		respondWithJSON(w, http.StatusUnprocessableEntity, validationErr.Fields, logger)
	case errors.As(err, &forbiddenErr):
		respondWithError(w, http.StatusForbidden, forbiddenErr.Message, logger)
	case errors.Is(err, dto.ErrMalformedBody):
		respondWithError(w, http.StatusBadRequest, err.Error(), logger)
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, msgNotFound, logger)
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, msgInvalidCredentials, logger)
	case errors.Is(err, domain.ErrUnauthorized):
		respondWithError(w, http.StatusUnauthorized, msgNotAuthenticated, logger)
	default:
		logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		respondWithError(w, http.StatusInternalServerError, msgInternal, logger)
	}
}

// idParam достаёт числовой {id} из пути
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// decodeAndValidate читает JSON тело в req и проверяет его
func decodeAndValidate(r *http.Request, req any) error {
	if err := dto.Decode(r.Body, req); err != nil {
		return err
	}
	return dto.Validate(req)
}
