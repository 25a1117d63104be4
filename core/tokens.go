package core

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// NewMutationID returns a fresh client mutation correlation identifier.
// Every mutation request carries its own; two calls never share one.
func NewMutationID() string {
	return uuid.NewString()
}

// NewWebsessionID returns a per-call websession token.
func NewWebsessionID() string {
	return uuid.NewString()
}

// AttributionID builds the attribution/tracking correlation string the
// platform expects alongside feedback mutations. The field layout
// (surface, referrer, entry point, timestamp, random component, user) is an
// upstream convention; only the format matters, not the individual values.
func AttributionID(surface, userID string) string {
	return fmt.Sprintf("%s,comet.home,via_cold_start,%d,%06d,,%s,",
		surface, time.Now().UnixMilli(), rand.Intn(1000000), userID)
}

// Checksum derives the jazoest-style checksum field from the form token:
// the digit '2' followed by the sum of the token's byte values.
func Checksum(token string) string {
	sum := 0
	for _, r := range token {
		sum += int(r)
	}
	return "2" + strconv.Itoa(sum)
}
