package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"partyplanner-backend/internal/security"
)

// NewRouter wires all handlers onto a gorilla/mux router.
func NewRouter(
	tokens security.TokenManager,
	authHandler *AuthHandler,
	userHandler *UserHandler,
	partyHandler *PartyHandler,
	adminHandler *AdminHandler,
) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, messageResponse{Message: "Party planner API"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	}).Methods(http.MethodGet)

	// Public auth routes
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	auth := AuthMiddleware(tokens)

	// User routes
	user := r.PathPrefix("/user").Subrouter()
	user.Use(auth)
	user.HandleFunc("/me", userHandler.UpdateProfile).Methods(http.MethodPut)

	// Party routes
	parties := r.PathPrefix("/parties").Subrouter()
	parties.Use(auth)
	parties.HandleFunc("", partyHandler.List).Methods(http.MethodGet)
	parties.HandleFunc("", partyHandler.Create).Methods(http.MethodPost)
	parties.HandleFunc("/{party_id:[0-9]+}", partyHandler.Get).Methods(http.MethodGet)
	parties.HandleFunc("/{party_id:[0-9]+}", partyHandler.Update).Methods(http.MethodPut)
	parties.HandleFunc("/{party_id:[0-9]+}", partyHandler.Delete).Methods(http.MethodDelete)
	parties.HandleFunc("/{party_id:[0-9]+}/respond-invite", partyHandler.RespondInvite).Methods(http.MethodPut)
	parties.HandleFunc("/{party_id:[0-9]+}/join-request", partyHandler.RequestToJoin).Methods(http.MethodPost)
	parties.HandleFunc("/{party_id:[0-9]+}/attendees/{user_id:[0-9]+}", partyHandler.RemoveAttendee).Methods(http.MethodDelete)

	// Admin routes
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth, AdminOnly)
	admin.HandleFunc("/users", adminHandler.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{user_id:[0-9]+}", adminHandler.DeleteUser).Methods(http.MethodDelete)

	return r
}
