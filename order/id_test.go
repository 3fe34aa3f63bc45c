package order

import (
	"math/rand"
	"regexp"
	"testing"
	"time"
)

var orderIDPattern = regexp.MustCompile(`^ORD-\d{4}-[A-Z0-9]{2}$`)

func TestGenerateOrderID_Format(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	now := time.Now()
	for i := 0; i < 200; i++ {
		id := GenerateOrderID(now.Add(time.Duration(i)*time.Millisecond), rnd)
		if !orderIDPattern.MatchString(id) {
			t.Fatalf("GenerateOrderID = %q, want match for %s", id, orderIDPattern)
		}
	}
}

func TestGenerateOrderID_UsesTimestampTail(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	// unix millis of this instant end in 1234
	now := time.UnixMilli(1700000001234)
	id := GenerateOrderID(now, rnd)
	if id[4:8] != "1234" {
		t.Errorf("time component = %s, want 1234 (id %s)", id[4:8], id)
	}
}
