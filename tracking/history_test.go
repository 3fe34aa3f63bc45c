package tracking

import (
	"context"
	"testing"
	"time"

	"unicart/models"
	"unicart/store"
)

func insertOrder(t *testing.T, mem *store.Memory, id string, userID *string, createdAt time.Time) {
	t.Helper()
	if err := mem.InsertOrder(context.Background(), models.Order{
		Order_id:   id,
		User_id:    userID,
		Created_at: createdAt,
	}); err != nil {
		t.Fatal(err)
	}
}

func TestResolveHistory_Union(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	uid := "user-1"
	base := time.Date(2025, 11, 10, 12, 0, 0, 0, time.UTC)

	// placed as guest before login, known only to the device
	insertOrder(t, mem, "ORD-0001-AA", nil, base)
	// placed while signed in, known to the server
	insertOrder(t, mem, "ORD-0002-BB", &uid, base.Add(time.Hour))
	// signed-in order also in the device list: must not duplicate
	insertOrder(t, mem, "ORD-0003-CC", &uid, base.Add(2*time.Hour))
	// someone else's order: must not leak in
	other := "user-2"
	insertOrder(t, mem, "ORD-0004-DD", &other, base.Add(3*time.Hour))

	got, err := ResolveHistory(ctx, mem, &uid, []string{"ORD-0001-AA", "ORD-0003-CC"})
	if err != nil {
		t.Fatal(err)
	}

	wantIDs := []string{"ORD-0003-CC", "ORD-0002-BB", "ORD-0001-AA"}
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d orders, want %d: %+v", len(got), len(wantIDs), got)
	}
	for i, want := range wantIDs {
		if got[i].Order_id != want {
			t.Errorf("got[%d] = %s, want %s (newest first)", i, got[i].Order_id, want)
		}
	}
}

func TestResolveHistory_GuestOnlySeesLocal(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	uid := "user-1"
	base := time.Now()

	insertOrder(t, mem, "ORD-0001-AA", nil, base)
	insertOrder(t, mem, "ORD-0002-BB", &uid, base)

	got, err := ResolveHistory(ctx, mem, nil, []string{"ORD-0001-AA"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Order_id != "ORD-0001-AA" {
		t.Errorf("got %+v, want only the local order", got)
	}
}

func TestResolveHistory_Empty(t *testing.T) {
	got, err := ResolveHistory(context.Background(), store.NewMemory(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %+v, want empty", got)
	}
}

func TestAutoSelect(t *testing.T) {
	one := []models.Order{{Order_id: "A"}}
	two := []models.Order{{Order_id: "A"}, {Order_id: "B"}}

	tests := []struct {
		name          string
		orders        []models.Order
		authenticated bool
		want          string // "" means list view
	}{
		{"sole order, guest", one, false, "A"},
		{"sole order, signed in", one, true, ""},
		{"two orders, guest", two, false, ""},
		{"no orders", nil, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AutoSelect(tt.orders, tt.authenticated)
			switch {
			case tt.want == "" && got != nil:
				t.Errorf("AutoSelect = %v, want nil", got.Order_id)
			case tt.want != "" && (got == nil || got.Order_id != tt.want):
				t.Errorf("AutoSelect = %v, want %s", got, tt.want)
			}
		})
	}
}
