package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/AdBoard/internal/domain"
	"github.com/GoArmGo/AdBoard/internal/dto"
	"github.com/GoArmGo/AdBoard/internal/usecase"
)

// UserHandler обработчик HTTP-запросов для пользователей и токенов.
type UserHandler struct {
	userUseCase usecase.UserUseCase
	authUseCase usecase.AuthUseCase
	logger      *slog.Logger
}

// NewUserHandler создаёт новый экземпляр UserHandler.
func NewUserHandler(users usecase.UserUseCase, auth usecase.AuthUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{userUseCase: users, authUseCase: auth, logger: logger}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUseCase.ListUsers(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, users, h.logger)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, msgNotFound, h.logger)
		return
	}

	user, err := h.userUseCase.GetUser(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, user, h.logger)
}

// Create регистрирует пользователя. Пароль в ответ не попадает.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.UserCreateRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}

	user, err := h.userUseCase.CreateUser(r.Context(), req.ToDomain(), req.Password, req.LocationNames)
	if err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusCreated, user, h.logger)
}

// Update: PUT и PATCH одинаково обновляют только переданные поля.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, msgNotFound, h.logger)
		return
	}

	var req dto.UserUpdateRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}

	user, err := h.userUseCase.UpdateUser(r.Context(), id, req.ToChanges())
	if err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, user, h.logger)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondWithError(w, http.StatusNotFound, msgNotFound, h.logger)
		return
	}

	if err := h.userUseCase.DeleteUser(r.Context(), id); err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}

	h.logger.Info("user deleted", "user_id", id, "by", UserFromContext(r.Context()).ID)
	respondNoContent(w)
}

// ObtainToken выдаёт пару access/refresh по логину и паролю.
func (h *UserHandler) ObtainToken(w http.ResponseWriter, r *http.Request) {
	var req dto.TokenObtainRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}

	pair, err := h.authUseCase.ObtainPair(r.Context(), req.Username, req.Password)
	if err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, pair, h.logger)
}

// RefreshToken выдаёт новый access токен по refresh токену.
func (h *UserHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req dto.TokenRefreshRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}

	access, err := h.authUseCase.Refresh(r.Context(), req.Refresh)
	if errors.Is(err, domain.ErrUnauthorized) {
		respondWithError(w, http.StatusUnauthorized, msgTokenInvalid, h.logger)
		return
	}
	if err != nil {
		respondWithDomainError(w, r, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, dto.AccessResponse{Access: access}, h.logger)
}
