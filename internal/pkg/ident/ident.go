// Package ident generates the logical identifiers stored on reminder
// records: a base36 millisecond timestamp followed by a random base36
// suffix. Independent of any storage-assigned key.
package ident

import (
	"crypto/rand"
	"strconv"
	"time"
)

const (
	alphabet     = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffixLength = 11
)

// New returns a fresh identifier. Roughly sortable by creation time via
// the timestamp prefix; uniqueness comes from the random suffix.
func New() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)

	buf := make([]byte, suffixLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand does not fail on supported platforms; fall back to
		// a nanosecond suffix rather than panicking in a request path.
		return ts + strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}

	return ts + string(buf)
}
