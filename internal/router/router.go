package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-salon-api/internal/config"
	"go-salon-api/internal/handler"
	"go-salon-api/internal/middleware"
)

type Handlers struct {
	Auth        *handler.AuthHandler
	Handshake   *handler.HandshakeHandler
	Inventory   *handler.InventoryHandler
	Cart        *handler.CartHandler
	Appointment *handler.AppointmentHandler
	User        *handler.UserHandler
	Upload      *handler.UploadHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)
	originPolicy := middleware.NewOriginPolicy(cfg.CORSOrigins)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(originPolicy))
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Post("/register", h.Auth.Register)
		api.Post("/login", h.Auth.Login)
		api.Post("/logout", h.Auth.Logout)
		api.With(authMiddleware.RequireUser).Get("/me", h.Auth.Me)

		api.Get("/handshake", h.Handshake.Issue)
		api.Post("/handshake/confirm", h.Handshake.Confirm)

		api.Get("/inventory", h.Inventory.List)
		api.With(authMiddleware.RequireUser, authMiddleware.RequireRoles("worker", "admin")).Post("/inventory", h.Inventory.Create)
		api.With(authMiddleware.RequireUser, authMiddleware.RequireRoles("worker", "admin")).Delete("/inventory/{id}", h.Inventory.Delete)

		api.Get("/cart", h.Cart.Get)
		api.Post("/cart", h.Cart.Add)
		api.Delete("/cart/{id}", h.Cart.Remove)
		api.Delete("/cart", h.Cart.Clear)

		api.With(authMiddleware.RequireUser).Get("/appointments", h.Appointment.List)
		api.With(authMiddleware.RequireUser).Post("/appointments", h.Appointment.Create)
		api.With(authMiddleware.RequireUser).Put("/appointments/{id}", h.Appointment.Update)
		api.With(authMiddleware.RequireUser).Delete("/appointments/{id}", h.Appointment.Delete)

		api.With(authMiddleware.RequireUser, authMiddleware.RequireRoles("admin")).Get("/users", h.User.List)

		api.With(authMiddleware.RequireUser, authMiddleware.RequireRoles("worker", "admin")).Post("/upload", h.Upload.Upload)
		api.Get("/pictures", h.Upload.ListPictures)
	})

	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir))))
	r.Handle("/pictures/*", http.StripPrefix("/pictures/", http.FileServer(http.Dir(cfg.PicturesDir))))
	if cfg.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
	}

	return r
}
