package order

import (
	"math/rand"
	"strconv"
	"time"
)

const base36Upper = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOrderID builds a short human-readable code such as "ORD-9382-X7":
// the last four digits of the millisecond timestamp plus two random base36
// characters. Uniqueness is best effort; no collision check is done.
func GenerateOrderID(now time.Time, rnd *rand.Rand) string {
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	tail := millis[len(millis)-4:]
	suffix := []byte{
		base36Upper[rnd.Intn(len(base36Upper))],
		base36Upper[rnd.Intn(len(base36Upper))],
	}
	return "ORD-" + tail + "-" + string(suffix)
}
