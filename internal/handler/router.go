package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/AdBoard/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Handlers набор обработчиков всех сущностей
type Handlers struct {
	Category  *CategoryHandler
	Location  *LocationHandler
	User      *UserHandler
	Ad        *AdHandler
	Selection *SelectionHandler
}

// RouterOptions параметры HTTP-слоя
type RouterOptions struct {
	RequestTimeout time.Duration
	AllowedOrigins []string
}

// NewRouter собирает chi-роутер со всеми маршрутами API
func NewRouter(h Handlers, authUseCase usecase.AuthUseCase, opts RouterOptions, logger *slog.Logger) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(c.Handler)
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, msgNotFound, logger)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, "Method \""+r.Method+"\" not allowed.", logger)
	})

	// выдача токенов не смотрит на заголовок Authorization:
	// клиент с истёкшим access токеном должен суметь обновить его
	r.Post("/user/token/", h.User.ObtainToken)
	r.Post("/user/token/refresh/", h.User.RefreshToken)

	r.Group(func(r chi.Router) {
		r.Use(Authenticate(authUseCase, logger))
		mountAPI(r, h, logger)
	})

	return r
}

// mountAPI регистрирует маршруты сущностей, пользователь уже определён Authenticate
func mountAPI(r chi.Router, h Handlers, logger *slog.Logger) {
	requireAuth := RequireAuth(logger)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
	})

	r.Route("/cat", func(r chi.Router) {
		r.Get("/", h.Category.List)
		r.Get("/{id:[0-9]+}/", h.Category.Get)
		r.Post("/create/", h.Category.Create)
		r.Patch("/{id:[0-9]+}/update/", h.Category.Update)
		r.Delete("/{id:[0-9]+}/delete/", h.Category.Delete)
	})

	r.Route("/location", func(r chi.Router) {
		r.Get("/", h.Location.List)
		r.Post("/", h.Location.Create)
		r.Get("/{id:[0-9]+}/", h.Location.Get)
		r.Put("/{id:[0-9]+}/", h.Location.Update)
		r.Patch("/{id:[0-9]+}/", h.Location.Update)
		r.Delete("/{id:[0-9]+}/", h.Location.Delete)
	})

	r.Route("/user", func(r chi.Router) {
		r.Get("/", h.User.List)
		r.Get("/{id:[0-9]+}/", h.User.Get)
		r.Post("/create/", h.User.Create)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Put("/{id:[0-9]+}/update/", h.User.Update)
			r.Patch("/{id:[0-9]+}/update/", h.User.Update)
			r.Delete("/{id:[0-9]+}/delete/", h.User.Delete)
		})
	})

	r.Route("/ad", func(r chi.Router) {
		r.Get("/", h.Ad.List)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/{id:[0-9]+}/", h.Ad.Get)
			r.Post("/create/", h.Ad.Create)
			r.Put("/{id:[0-9]+}/update/", h.Ad.Update)
			r.Patch("/{id:[0-9]+}/update/", h.Ad.Update)
			r.Post("/{id:[0-9]+}/upload_image/", h.Ad.UploadImage)
			r.Delete("/{id:[0-9]+}/delete/", h.Ad.Delete)
		})
	})

	r.Route("/selection", func(r chi.Router) {
		r.Get("/", h.Selection.List)
		r.Get("/{id:[0-9]+}/", h.Selection.Get)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/create/", h.Selection.Create)
			r.Put("/{id:[0-9]+}/update/", h.Selection.Update)
			r.Patch("/{id:[0-9]+}/update/", h.Selection.Update)
			r.Delete("/{id:[0-9]+}/delete/", h.Selection.Delete)
		})
	})
}
