package common

import (
	"errors"
)

// Rejection kinds surfaced by the services. Every one is a synchronous
// precondition failure scoped to a single operation; handlers map them to
// HTTP statuses with errors.Is.
var (
	ErrMalformedIdentifier      = errors.New("user id is illegal")
	ErrMalformedDisplayName     = errors.New("user name is illegal")
	ErrDuplicateUser            = errors.New("user id is already registered")
	ErrUnknownUser              = errors.New("user does not exist")
	ErrDuplicateRelationship    = errors.New("friend relation already exists")
	ErrNoPendingRelationship    = errors.New("no pending friend relation")
	ErrNoActiveRelationship     = errors.New("no active friend relation")
	ErrInvalidFollowRole        = errors.New("follower must be applicantId or acceptorId")
	ErrRedundantFollowState     = errors.New("follow flag is already in the requested state")
	ErrContentTooLarge          = errors.New("post content exceeds the size limit")
	ErrForgedKey                = errors.New("record key is malformed")
	ErrContentNotFound          = errors.New("post does not exist")
	ErrUnauthorizedModification = errors.New("only the creator may modify a post")
)
