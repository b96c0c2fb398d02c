package user

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"socialbook/internal/common"
)

// Handler wires the user routes to the service layer.
type Handler struct {
	userService UserService
}

func NewHandler(userService UserService) *Handler {
	return &Handler{userService: userService}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/v1/users", h.Users).Methods(http.MethodGet)
	r.HandleFunc("/v1/regist", h.Regist).Methods(http.MethodPost)
}

type registRequest struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

type registResponse struct {
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	Token     string `json:"token"`
	CreatedAt string `json:"createdAt"`
}

func (h *Handler) Regist(w http.ResponseWriter, r *http.Request) {
	var req registRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSON(w, http.StatusBadRequest, common.ErrorMessage{Message: "invalid request body"})
		return
	}

	u, token, err := h.userService.Register(r.Context(), req.UserID, req.UserName)
	if err != nil {
		log.Printf("regist rejected for %s: %v", req.UserID, err)
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, registResponse{
		UserID:    u.UserID,
		UserName:  u.UserName,
		Token:     token,
		CreatedAt: u.CreatedAt.Format("2006-01-02T15:04:05Z"),
	})
}

func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, users)
}
