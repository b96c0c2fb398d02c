package common

import (
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"time"
)

// Record keys look like frnd20160804171109732: a short typed prefix followed
// by a 17-digit yyyyMMddHHmmssSSS suffix. The suffix doubles as a creation
// hint and as an abuse guard: modify/delete reject keys that do not parse
// before the store is ever touched.

const keySuffixDigits = 17

var keySuffixPattern = regexp.MustCompile(`^[0-9]{17}$`)

var (
	keyMu         sync.Mutex
	lastKeySuffix uint64
)

// GenerateKey mints prefix + 17-digit suffix. Two calls in the same
// millisecond would format identically, so minting holds a monotonic floor:
// a suffix that does not exceed the previous one is bumped by one.
func GenerateKey(prefix string) string {
	now := time.Now()
	suffix := uint64(now.Year())*1e13 +
		uint64(now.Month())*1e11 +
		uint64(now.Day())*1e9 +
		uint64(now.Hour())*1e7 +
		uint64(now.Minute())*1e5 +
		uint64(now.Second())*1e3 +
		uint64(now.Nanosecond()/1e6)

	keyMu.Lock()
	if suffix <= lastKeySuffix {
		suffix = lastKeySuffix + 1
	}
	lastKeySuffix = suffix
	keyMu.Unlock()

	return fmt.Sprintf("%s%0*d", prefix, keySuffixDigits, suffix)
}

// ValidKey reports whether key is prefix followed by exactly 17 digits.
func ValidKey(key, prefix string) bool {
	if len(key) != len(prefix)+keySuffixDigits {
		return false
	}
	if key[:len(prefix)] != prefix {
		return false
	}
	return keySuffixPattern.MatchString(key[len(prefix):])
}

// KeySuffix returns the numeric suffix of a key already checked with
// ValidKey. Exposed for tests asserting mint monotonicity.
func KeySuffix(key, prefix string) (uint64, error) {
	if !ValidKey(key, prefix) {
		return 0, fmt.Errorf("key %q does not match prefix %q", key, prefix)
	}
	return strconv.ParseUint(key[len(prefix):], 10, 64)
}
