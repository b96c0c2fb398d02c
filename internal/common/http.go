package common

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

// ErrorMessage is the body of every rejected request.
type ErrorMessage struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("encode response: %v", err)
	}
}

// WriteError maps a service rejection to its HTTP status. Every kind is a
// caller mistake except ErrContentNotFound; anything unrecognized is a
// server-side failure and its detail stays out of the body.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrContentNotFound):
		WriteJSON(w, http.StatusNotFound, ErrorMessage{Message: err.Error()})
	case isRejection(err):
		WriteJSON(w, http.StatusBadRequest, ErrorMessage{Message: err.Error()})
	default:
		log.Printf("internal error: %v", err)
		WriteJSON(w, http.StatusInternalServerError, ErrorMessage{Message: "server error"})
	}
}

func isRejection(err error) bool {
	for _, kind := range []error{
		ErrMalformedIdentifier,
		ErrMalformedDisplayName,
		ErrDuplicateUser,
		ErrUnknownUser,
		ErrDuplicateRelationship,
		ErrNoPendingRelationship,
		ErrNoActiveRelationship,
		ErrInvalidFollowRole,
		ErrRedundantFollowState,
		ErrContentTooLarge,
		ErrForgedKey,
		ErrUnauthorizedModification,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
