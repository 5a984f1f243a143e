package metrics

import (
	"encoding/binary"
	"encoding/hex"
	"math"

	"github.com/google/uuid"
	"github.com/spaolacci/murmur3"

	"kucukaslan/eventlab/domain"
)

// tokenNamespace scopes dataset tokens derived from fingerprints.
var tokenNamespace = uuid.MustParse("6f0c1d7e-3a52-4c1b-9d4e-2b8f5a7c9e10")

// Fingerprint returns a 128-bit murmur3 digest of the collection's content,
// hex encoded. Equal collections in the same order share a fingerprint,
// which makes it a cache key for aggregates.
func Fingerprint(events []domain.Event) string {
	h := murmur3.New128()
	var buf [8]byte
	for _, e := range events {
		h.Write([]byte(e.ID))
		h.Write([]byte{0})
		h.Write([]byte(e.UserID))
		h.Write([]byte{0})
		h.Write([]byte(e.SessionID))
		h.Write([]byte{0})
		binary.LittleEndian.PutUint64(buf[:], uint64(e.Timestamp))
		h.Write(buf[:])
		h.Write([]byte(e.EventType))
		h.Write([]byte{0})
		h.Write([]byte(e.URL))
		h.Write([]byte{0})
		h.Write([]byte(e.Device))
		h.Write([]byte{0})
		h.Write([]byte(e.Country))
		h.Write([]byte{0})
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(e.RevenueValue()))
		h.Write(buf[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Token turns a fingerprint into a stable, URL-safe dataset identifier.
func Token(fingerprint string) string {
	return uuid.NewSHA1(tokenNamespace, []byte(fingerprint)).String()
}
