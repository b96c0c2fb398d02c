package post

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"socialbook/internal/common"
)

type Handler struct {
	postService PostService
}

func NewHandler(postService PostService) *Handler {
	return &Handler{postService: postService}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/v1/newsfeed/{userId}", h.Newsfeed).Methods(http.MethodGet)
	r.HandleFunc("/v1/timeline/{userId}", h.Timeline).Methods(http.MethodGet)
	r.HandleFunc("/v1/post", h.Write).Methods(http.MethodPost)
	r.HandleFunc("/v1/post", h.Modify).Methods(http.MethodPut)
	r.HandleFunc("/v1/post", h.Delete).Methods(http.MethodDelete)
}

type writeRequest struct {
	OwnerID   string `json:"ownerId"`
	CreatorID string `json:"creatorId"`
	Content   string `json:"content"`
}

type modifyRequest struct {
	PostPK     string `json:"postPk"`
	ModifierID string `json:"modifierId"`
	Content    string `json:"content"`
}

type deleteRequest struct {
	PostPK     string `json:"postPk"`
	ModifierID string `json:"modifierId"`
}

func (h *Handler) Newsfeed(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	posts, err := h.postService.Newsfeed(r.Context(), userID)
	if err != nil {
		log.Printf("newsfeed rejected for %s: %v", userID, err)
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, posts)
}

func (h *Handler) Timeline(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	posts, err := h.postService.Timeline(r.Context(), userID)
	if err != nil {
		log.Printf("timeline rejected for %s: %v", userID, err)
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, posts)
}

func (h *Handler) Write(w http.ResponseWriter, r *http.Request) {
	var req writeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSON(w, http.StatusBadRequest, common.ErrorMessage{Message: "invalid request body"})
		return
	}

	p, err := h.postService.Write(r.Context(), req.OwnerID, req.CreatorID, req.Content)
	if err != nil {
		log.Printf("post write rejected (owner %s, creator %s): %v", req.OwnerID, req.CreatorID, err)
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) Modify(w http.ResponseWriter, r *http.Request) {
	var req modifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSON(w, http.StatusBadRequest, common.ErrorMessage{Message: "invalid request body"})
		return
	}

	p, err := h.postService.Modify(r.Context(), req.PostPK, req.ModifierID, req.Content)
	if err != nil {
		log.Printf("post modify rejected (%s by %s): %v", req.PostPK, req.ModifierID, err)
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSON(w, http.StatusBadRequest, common.ErrorMessage{Message: "invalid request body"})
		return
	}

	if err := h.postService.Delete(r.Context(), req.PostPK, req.ModifierID); err != nil {
		log.Printf("post delete rejected (%s by %s): %v", req.PostPK, req.ModifierID, err)
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusNoContent, nil)
}
