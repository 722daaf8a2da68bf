package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"partyplanner-backend/internal/domain"
	"partyplanner-backend/internal/service"
)

type PartyHandler struct {
	partySvc  service.PartyService
	inviteSvc service.InviteService
}

func NewPartyHandler(partySvc service.PartyService, inviteSvc service.InviteService) *PartyHandler {
	return &PartyHandler{
		partySvc:  partySvc,
		inviteSvc: inviteSvc,
	}
}

type createPartyRequest struct {
	Title        string    `json:"title"`
	Platform     string    `json:"platform"`
	DateTime     time.Time `json:"date_time"`
	Description  string    `json:"description"`
	InviteEmails []string  `json:"invite_emails"`
}

type updatePartyRequest struct {
	Title       *string    `json:"title"`
	Platform    *string    `json:"platform"`
	DateTime    *time.Time `json:"date_time"`
	Description *string    `json:"description"`
}

type respondInviteRequest struct {
	Accept bool `json:"accept"`
}

func partyIDFromPath(r *http.Request) (int32, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["party_id"], 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(id), true
}

func (h *PartyHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	var req createPartyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.Title == "" || req.DateTime.IsZero() {
		writeBadRequest(w, "title and date_time are required")
		return
	}

	party := &domain.Party{
		Title:       req.Title,
		Platform:    req.Platform,
		DateTime:    req.DateTime,
		Description: req.Description,
	}

	created, err := h.partySvc.CreateParty(r.Context(), claims.UserID, party, req.InviteEmails)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *PartyHandler) Get(w http.ResponseWriter, r *http.Request) {
	partyID, ok := partyIDFromPath(r)
	if !ok {
		writeBadRequest(w, "invalid party id")
		return
	}

	party, err := h.partySvc.GetParty(r.Context(), partyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, party)
}

func (h *PartyHandler) List(w http.ResponseWriter, r *http.Request) {
	parties, err := h.partySvc.ListParties(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if parties == nil {
		parties = []domain.Party{}
	}

	writeJSON(w, http.StatusOK, parties)
}

func (h *PartyHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	partyID, ok := partyIDFromPath(r)
	if !ok {
		writeBadRequest(w, "invalid party id")
		return
	}

	var req updatePartyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	update := &domain.PartyUpdate{
		Title:       req.Title,
		Platform:    req.Platform,
		DateTime:    req.DateTime,
		Description: req.Description,
	}

	party, err := h.partySvc.UpdateParty(r.Context(), partyID, claims.UserID, update)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, party)
}

func (h *PartyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	partyID, ok := partyIDFromPath(r)
	if !ok {
		writeBadRequest(w, "invalid party id")
		return
	}

	if err := h.partySvc.DeleteParty(r.Context(), partyID, claims.UserID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Party and all related data deleted successfully"})
}

func (h *PartyHandler) RespondInvite(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	partyID, ok := partyIDFromPath(r)
	if !ok {
		writeBadRequest(w, "invalid party id")
		return
	}

	var req respondInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	if err := h.inviteSvc.RespondToInvite(r.Context(), partyID, claims.UserID, req.Accept); err != nil {
		writeServiceError(w, err)
		return
	}

	msg := "Successfully declined invitation"
	if req.Accept {
		msg = "Successfully accepted invitation"
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

func (h *PartyHandler) RequestToJoin(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	partyID, ok := partyIDFromPath(r)
	if !ok {
		writeBadRequest(w, "invalid party id")
		return
	}

	if err := h.inviteSvc.RequestToJoin(r.Context(), partyID, claims.UserID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Join request sent successfully"})
}

func (h *PartyHandler) RemoveAttendee(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	partyID, ok := partyIDFromPath(r)
	if !ok {
		writeBadRequest(w, "invalid party id")
		return
	}
	userID, err := strconv.ParseInt(mux.Vars(r)["user_id"], 10, 32)
	if err != nil {
		writeBadRequest(w, "invalid user id")
		return
	}

	if err := h.inviteSvc.RemoveAttendee(r.Context(), partyID, int32(userID), claims.UserID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Attendee removed successfully"})
}
