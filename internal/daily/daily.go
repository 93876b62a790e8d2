// internal/daily/daily.go
//
// Deterministic daily answer selection. Every player on the same UTC
// calendar day gets the same station: the date key is hashed with a fixed
// salt and reduced modulo the catalog size. Wall-clock time of day never
// enters the hash.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// StationIndex returns a deterministic index for a date using
// HMAC(salt, YYYY-MM-DD) % stationCount.
func StationIndex(date time.Time, salt string, stationCount int) int {
	if stationCount <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(stationCount))
}
