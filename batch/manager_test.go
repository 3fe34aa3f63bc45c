package batch

import (
	"context"
	"errors"
	"testing"
	"time"

	"unicart/store"
)

func testManager(t *testing.T) (*Manager, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	m := NewManager(mem)
	// deterministic, strictly increasing clock
	now := time.Date(2025, 11, 10, 18, 0, 0, 0, time.UTC)
	m.Now = func() time.Time {
		now = now.Add(time.Second)
		return now
	}
	return m, mem
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	m, _ := testManager(t)

	b, err := m.Create(ctx, "Dinner 8:00 PM")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if b.Slot_label != "Dinner 8:00 PM" {
		t.Errorf("Slot_label = %q", b.Slot_label)
	}
	if b.Current_step != 1 {
		t.Errorf("Current_step = %d, want 1", b.Current_step)
	}
	if b.Status_message != "Accepting orders" {
		t.Errorf("Status_message = %q", b.Status_message)
	}
	if !b.Is_active {
		t.Error("Is_active = false, want true")
	}
	if b.Batch_id == "" {
		t.Error("Batch_id is empty")
	}
}

func TestCreate_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("blank label", func(t *testing.T) {
		m, _ := testManager(t)
		if _, err := m.Create(ctx, "   "); !errors.Is(err, ErrSlotLabelRequired) {
			t.Errorf("err = %v, want ErrSlotLabelRequired", err)
		}
	})

	t.Run("active batch exists", func(t *testing.T) {
		m, _ := testManager(t)
		if _, err := m.Create(ctx, "Lunch"); err != nil {
			t.Fatal(err)
		}
		if _, err := m.Create(ctx, "Dinner"); !errors.Is(err, ErrActiveBatchExists) {
			t.Errorf("err = %v, want ErrActiveBatchExists", err)
		}
	})

	t.Run("allowed after close", func(t *testing.T) {
		m, _ := testManager(t)
		b, err := m.Create(ctx, "Lunch")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := m.SetActive(ctx, b.Batch_id, false); err != nil {
			t.Fatal(err)
		}
		if _, err := m.Create(ctx, "Dinner"); err != nil {
			t.Errorf("Create after close: %v", err)
		}
	})
}

func TestCurrent_IsNewest(t *testing.T) {
	ctx := context.Background()
	m, _ := testManager(t)

	if _, err := m.Current(ctx); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Current on empty store = %v, want ErrNotFound", err)
	}

	first, _ := m.Create(ctx, "Lunch")
	m.SetActive(ctx, first.Batch_id, false)
	second, _ := m.Create(ctx, "Dinner")

	got, err := m.Current(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.Batch_id != second.Batch_id {
		t.Errorf("Current = %s, want newest batch %s", got.Batch_id, second.Batch_id)
	}
}

func TestSetActive_KeepsStep(t *testing.T) {
	ctx := context.Background()
	m, _ := testManager(t)

	b, _ := m.Create(ctx, "Dinner")
	if _, err := m.Advance(ctx, b.Batch_id, 3, "Preparing your food"); err != nil {
		t.Fatal(err)
	}

	closed, err := m.SetActive(ctx, b.Batch_id, false)
	if err != nil {
		t.Fatal(err)
	}
	if closed.Is_active {
		t.Error("still active after close")
	}
	if closed.Current_step != 3 {
		t.Errorf("close reset step to %d", closed.Current_step)
	}

	reopened, err := m.SetActive(ctx, b.Batch_id, true)
	if err != nil {
		t.Fatal(err)
	}
	if !reopened.Is_active || reopened.Current_step != 3 {
		t.Errorf("reopen: active=%v step=%d, want active step 3", reopened.Is_active, reopened.Current_step)
	}
}

func TestAdvance(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		step    int
		wantErr error
	}{
		{"step 1", 1, nil},
		{"step 5", 5, nil},
		{"step 0", 0, ErrInvalidStep},
		{"step 6", 6, ErrInvalidStep},
		{"negative", -1, ErrInvalidStep},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := testManager(t)
			b, _ := m.Create(ctx, "Dinner")
			_, err := m.Advance(ctx, b.Batch_id, tt.step, "msg")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Advance(%d) = %v, want %v", tt.step, err, tt.wantErr)
			}
		})
	}
}

func TestAdvance_AllowedWhileClosed(t *testing.T) {
	ctx := context.Background()
	m, _ := testManager(t)

	b, _ := m.Create(ctx, "Dinner")
	m.SetActive(ctx, b.Batch_id, false)

	got, err := m.Advance(ctx, b.Batch_id, 4, "Out for delivery")
	if err != nil {
		t.Fatalf("Advance on closed batch: %v", err)
	}
	if got.Current_step != 4 || got.Status_message != "Out for delivery" {
		t.Errorf("got step=%d msg=%q", got.Current_step, got.Status_message)
	}
}

func TestArchive(t *testing.T) {
	ctx := context.Background()

	t.Run("rejected while open", func(t *testing.T) {
		m, _ := testManager(t)
		b, _ := m.Create(ctx, "Dinner")
		if err := m.Archive(ctx, b.Batch_id); !errors.Is(err, ErrBatchStillOpen) {
			t.Errorf("err = %v, want ErrBatchStillOpen", err)
		}
	})

	t.Run("succeeds when closed", func(t *testing.T) {
		m, mem := testManager(t)
		b, _ := m.Create(ctx, "Dinner")
		m.SetActive(ctx, b.Batch_id, false)
		if err := m.Archive(ctx, b.Batch_id); err != nil {
			t.Fatalf("Archive: %v", err)
		}
		if _, err := mem.BatchByID(ctx, b.Batch_id); !errors.Is(err, store.ErrNotFound) {
			t.Errorf("batch still present after archive: %v", err)
		}
	})

	t.Run("unknown batch", func(t *testing.T) {
		m, _ := testManager(t)
		if err := m.Archive(ctx, "nope"); !errors.Is(err, store.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}
