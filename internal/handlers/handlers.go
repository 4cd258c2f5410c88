package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shahedzaman612/Inventory-Backend/internal/auth"
	"github.com/shahedzaman612/Inventory-Backend/internal/config"
	"github.com/shahedzaman612/Inventory-Backend/internal/middleware"
	"github.com/shahedzaman612/Inventory-Backend/internal/oauth"
	"github.com/shahedzaman612/Inventory-Backend/internal/service"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	inventoryService *service.InventoryService,
	itemService *service.ItemService,
	tokens *auth.TokenManager,
	providers []*oauth.Provider,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	// Handlers
	authHandler := NewAuthHandler(userService, logger)
	oauthHandler := NewOAuthHandler(userService, providers, logger, cfg)
	inventoryHandler := NewInventoryHandler(inventoryService, logger)
	itemHandler := NewItemHandler(itemService, logger)

	// Liveness
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("Inventory Backend Running"))
	})

	// Public auth routes
	r.Post("/api/auth/register", authHandler.Register)
	r.Get("/api/auth/verify-email/{token}", authHandler.VerifyEmail)
	r.Post("/api/auth/login", authHandler.Login)
	r.Post("/api/auth/forgot-password", authHandler.ForgotPassword)
	r.Post("/api/auth/reset-password/{token}", authHandler.ResetPassword)

	// OAuth
	for _, p := range providers {
		r.Get("/auth/"+p.Name, oauthHandler.Begin(p))
		r.Get("/auth/"+p.Name+"/callback", oauthHandler.Callback(p))
	}

	// Всё под /api/inventories — только с валидным Bearer-токеном.
	r.Route("/api/inventories", func(r chi.Router) {
		r.Use(middleware.WithAuth(tokens))

		r.Get("/", inventoryHandler.List)
		r.Get("/search", inventoryHandler.Search)
		r.Get("/my", inventoryHandler.My)
		r.Get("/stats", inventoryHandler.Stats)
		r.Post("/", inventoryHandler.Create)

		r.Route("/{inventoryId}", func(r chi.Router) {
			r.Get("/", inventoryHandler.Get)
			r.Put("/", inventoryHandler.Update)
			r.Delete("/", inventoryHandler.Delete)

			r.Get("/items", itemHandler.List)
			r.Post("/items", itemHandler.Add)
			r.Put("/items/{itemId}", itemHandler.Update)
			r.Delete("/items/{itemId}", itemHandler.Delete)
		})
	})

	return &Handler{Router: r}
}
