package common

import (
	"regexp"
)

// Identity syntax rules. These run before any store access so malformed
// input never turns into a query.
var (
	// user ids: start with a letter, then letters/digits/underscore,
	// 6-45 chars total.
	userIDPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]{5,44}$`)

	// display names: letters, digits or Hangul syllables. Hangul makes the
	// rune count and the byte count diverge, hence the separate byte cap.
	userNamePattern = regexp.MustCompile(`^[a-zA-Z0-9ㄱ-ㅎ가-힣]{1,44}$`)
)

const maxUserNameBytes = 45

// ValidUserID reports whether id is a syntactically acceptable user id.
// No existence check happens here.
func ValidUserID(id string) bool {
	if id == "" {
		return false
	}
	return userIDPattern.MatchString(id)
}

// ValidUserName reports whether name is a syntactically acceptable display
// name: non-empty, at most 45 bytes, letters/digits/Hangul only.
func ValidUserName(name string) bool {
	if name == "" {
		return false
	}
	if len(name) > maxUserNameBytes {
		return false
	}
	return userNamePattern.MatchString(name)
}

// ValidUserIDs reports whether every supplied id passes ValidUserID.
func ValidUserIDs(ids ...string) bool {
	for _, id := range ids {
		if !ValidUserID(id) {
			return false
		}
	}
	return true
}
