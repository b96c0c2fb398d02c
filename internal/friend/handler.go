package friend

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"socialbook/internal/common"
)

type Handler struct {
	friendService FriendService
}

func NewHandler(friendService FriendService) *Handler {
	return &Handler{friendService: friendService}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/v1/friend", h.Apply).Methods(http.MethodPost)
	r.HandleFunc("/v1/friend", h.Accept).Methods(http.MethodPut)
	r.HandleFunc("/v1/friend", h.Terminate).Methods(http.MethodDelete)
	r.HandleFunc("/v1/follow", h.Follow).Methods(http.MethodPost)
	r.HandleFunc("/v1/follow", h.Unfollow).Methods(http.MethodDelete)
}

type pairRequest struct {
	ApplicantID string `json:"applicantId"`
	AcceptorID  string `json:"acceptorId"`
	// Follower selects whose flag a follow/unfollow toggles:
	// "applicantId" or "acceptorId". Ignored by the friend routes.
	Follower string `json:"follower,omitempty"`
}

func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	req, ok := decodePair(w, r)
	if !ok {
		return
	}

	friend, err := h.friendService.Apply(r.Context(), req.ApplicantID, req.AcceptorID)
	if err != nil {
		log.Printf("friend apply rejected (%s -> %s): %v", req.ApplicantID, req.AcceptorID, err)
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, friend)
}

func (h *Handler) Accept(w http.ResponseWriter, r *http.Request) {
	req, ok := decodePair(w, r)
	if !ok {
		return
	}

	friend, err := h.friendService.Accept(r.Context(), req.ApplicantID, req.AcceptorID)
	if err != nil {
		log.Printf("friend accept rejected (%s -> %s): %v", req.ApplicantID, req.AcceptorID, err)
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, friend)
}

func (h *Handler) Terminate(w http.ResponseWriter, r *http.Request) {
	req, ok := decodePair(w, r)
	if !ok {
		return
	}

	friend, err := h.friendService.Terminate(r.Context(), req.ApplicantID, req.AcceptorID)
	if err != nil {
		log.Printf("friend terminate rejected (%s, %s): %v", req.ApplicantID, req.AcceptorID, err)
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, friend)
}

func (h *Handler) Follow(w http.ResponseWriter, r *http.Request) {
	h.toggleFollow(w, r, true)
}

func (h *Handler) Unfollow(w http.ResponseWriter, r *http.Request) {
	h.toggleFollow(w, r, false)
}

func (h *Handler) toggleFollow(w http.ResponseWriter, r *http.Request, follow bool) {
	req, ok := decodePair(w, r)
	if !ok {
		return
	}

	role, err := ParseFollowRole(req.Follower)
	if err != nil {
		log.Printf("follow rejected, bad follower token %q", req.Follower)
		common.WriteError(w, err)
		return
	}

	var friend interface{}
	if follow {
		friend, err = h.friendService.Follow(r.Context(), req.ApplicantID, req.AcceptorID, role)
	} else {
		friend, err = h.friendService.Unfollow(r.Context(), req.ApplicantID, req.AcceptorID, role)
	}
	if err != nil {
		log.Printf("follow toggle rejected (%s, %s, %s): %v", req.ApplicantID, req.AcceptorID, req.Follower, err)
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, friend)
}

func decodePair(w http.ResponseWriter, r *http.Request) (pairRequest, bool) {
	var req pairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSON(w, http.StatusBadRequest, common.ErrorMessage{Message: "invalid request body"})
		return pairRequest{}, false
	}
	return req, true
}
