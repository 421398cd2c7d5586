package routes

import (
	"net/http"

	"github.com/foodhubdev/foodhub/app/configs"
	"github.com/foodhubdev/foodhub/app/handlers"
	adminhandlers "github.com/foodhubdev/foodhub/app/handlers/admin"
	"github.com/foodhubdev/foodhub/app/middlewares"
	"github.com/foodhubdev/foodhub/app/repositories"
	"github.com/foodhubdev/foodhub/app/services"
	"github.com/foodhubdev/foodhub/app/utils/renderer"
	"github.com/foodhubdev/foodhub/app/utils/sessions"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services and handlers onto the API surface.
func NewRouter(db *gorm.DB, sessionStore sessions.SessionStore) http.Handler {
	render := renderer.New()

	itemRepo := repositories.NewMenuItemRepository(db)
	categoryRepo := repositories.NewMenuCategoryRepository(db)
	custRepo := repositories.NewCustomizationRepository(db)
	recordRepo := repositories.NewCartRecordRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	userRepo := repositories.NewUserRepository(db)

	catalogSvc := services.NewCatalogService(itemRepo, categoryRepo, custRepo)
	cartSvc := services.NewCartService(recordRepo, catalogSvc)
	orderSvc := services.NewOrderService(orderRepo, cartSvc)

	menuHandler := handlers.NewMenuHandler(catalogSvc, render)
	cartHandler := handlers.NewCartHandler(cartSvc, catalogSvc, sessionStore, render)
	checkoutHandler := handlers.NewCheckoutHandler(orderSvc, sessionStore, render)
	orderHandler := handlers.NewOrderHandler(orderSvc, render)
	authHandler := handlers.NewAuthHandler(userRepo, sessionStore, render)

	csrfHandler := handlers.NewCSRFHandler(render)

	menuAdmin := adminhandlers.NewMenuAdminHandler(itemRepo, render)
	optionAdmin := adminhandlers.NewOptionAdminHandler(custRepo, render)
	orderAdmin := adminhandlers.NewOrderAdminHandler(orderSvc, userRepo, render)

	router := mux.NewRouter()
	router.Use(middlewares.UserContextMiddleware(sessionStore, userRepo))

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/csrf", csrfHandler.GetToken).Methods("GET")

	api.HandleFunc("/menu", menuHandler.GetMenu).Methods("GET")
	api.HandleFunc("/menu/categories", menuHandler.GetCategories).Methods("GET")
	api.HandleFunc("/menu/popular", menuHandler.GetPopular).Methods("GET")
	api.HandleFunc("/menu/items/{id:[0-9]+}", menuHandler.GetItem).Methods("GET")

	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	api.HandleFunc("/auth/me", authHandler.Me).Methods("GET")

	api.HandleFunc("/cart", cartHandler.GetCart).Methods("GET")
	api.HandleFunc("/cart/count", cartHandler.GetCount).Methods("GET")
	api.HandleFunc("/cart/items", cartHandler.AddItem).Methods("POST")
	api.HandleFunc("/cart/items/{lineId}", cartHandler.UpdateLine).Methods("PUT")
	api.HandleFunc("/cart/items/{lineId}", cartHandler.RemoveLine).Methods("DELETE")
	api.HandleFunc("/cart", cartHandler.ClearCart).Methods("DELETE")

	user := api.NewRoute().Subrouter()
	user.Use(middlewares.RequireUser)
	user.HandleFunc("/checkout", checkoutHandler.Checkout).Methods("POST")
	user.HandleFunc("/orders", orderHandler.GetOrders).Methods("GET")

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middlewares.RequireAdmin)
	admin.HandleFunc("/menu", menuAdmin.CreateItem).Methods("POST")
	admin.HandleFunc("/menu/{id:[0-9]+}", menuAdmin.UpdateItem).Methods("PUT")
	admin.HandleFunc("/menu/{id:[0-9]+}/active", menuAdmin.SetItemActive).Methods("PATCH")
	admin.HandleFunc("/options", optionAdmin.CreateOption).Methods("POST")
	admin.HandleFunc("/options/{id:[0-9]+}", optionAdmin.UpdateOption).Methods("PUT")
	admin.HandleFunc("/options/{id:[0-9]+}/toggle", optionAdmin.ToggleOption).Methods("POST")
	admin.HandleFunc("/orders", orderAdmin.GetOrders).Methods("GET")
	admin.HandleFunc("/orders/{id}/status", orderAdmin.UpdateStatus).Methods("PATCH")
	admin.HandleFunc("/analytics", orderAdmin.GetDashboard).Methods("GET")

	csrfKey := []byte(configs.LoadENV.CSRFKey)
	csrfMiddleware := csrf.Protect(
		csrfKey,
		csrf.Secure(configs.LoadENV.AppEnv == "production"),
		csrf.Path("/"),
	)

	return csrfMiddleware(router)
}
