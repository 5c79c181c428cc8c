package http

import (
	"net/http"

	"arogyamix-server/internal/delivery/http/handler"
	"arogyamix-server/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	profileHandler     *handler.ProfileHandler
	appointmentHandler *handler.AppointmentHandler
	partnerHandler     *handler.PartnerHandler
	productHandler     *handler.ProductHandler
	cartHandler        *handler.CartHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	appointmentHandler *handler.AppointmentHandler,
	partnerHandler *handler.PartnerHandler,
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		profileHandler:     profileHandler,
		appointmentHandler: appointmentHandler,
		partnerHandler:     partnerHandler,
		productHandler:     productHandler,
		cartHandler:        cartHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Catalog routes (public)
	api.HandleFunc("/products", r.productHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", r.productHandler.GetByID).Methods(http.MethodGet)

	// Partner applications (public - applicants have no account yet)
	partners := api.PathPrefix("/partners").Subrouter()
	partners.HandleFunc("", r.partnerHandler.Apply).Methods(http.MethodPost)
	partners.HandleFunc("/farmer", r.partnerHandler.ApplyFarmer).Methods(http.MethodPost)

	// Profile routes (protected)
	profile := api.PathPrefix("/profile").Subrouter()
	profile.Use(r.authMiddleware.Authenticate)
	profile.HandleFunc("", r.profileHandler.GetProfile).Methods(http.MethodGet)
	profile.HandleFunc("", r.profileHandler.UpdateProfile).Methods(http.MethodPut)

	// Appointment routes (protected)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("", r.appointmentHandler.Book).Methods(http.MethodPost)
	appointments.HandleFunc("", r.appointmentHandler.List).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}/meet-link", r.appointmentHandler.GetMeetLink).Methods(http.MethodGet)

	// Cart routes (protected)
	cart := api.PathPrefix("/cart").Subrouter()
	cart.Use(r.authMiddleware.Authenticate)
	cart.HandleFunc("", r.cartHandler.Get).Methods(http.MethodGet)
	cart.HandleFunc("/items", r.cartHandler.Adjust).Methods(http.MethodPost)
	cart.HandleFunc("/checkout", r.cartHandler.Checkout).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
