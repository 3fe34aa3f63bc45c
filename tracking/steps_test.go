package tracking

import "testing"

func TestSteps_Contract(t *testing.T) {
	want := []string{"Order Placed", "Order Accepted", "Preparing Food", "Out for Delivery", "Delivered"}
	if len(Steps) != 5 {
		t.Fatalf("len(Steps) = %d, want exactly 5", len(Steps))
	}
	for i, step := range Steps {
		if step.ID != i+1 {
			t.Errorf("Steps[%d].ID = %d, want %d", i, step.ID, i+1)
		}
		if step.Label != want[i] {
			t.Errorf("Steps[%d].Label = %q, want %q", i, step.Label, want[i])
		}
	}
}

func TestStateOf(t *testing.T) {
	tests := []struct {
		stepID, current int
		want            StepState
	}{
		{1, 3, StepCompleted},
		{2, 3, StepCompleted},
		{3, 3, StepCurrent},
		{4, 3, StepPending},
		{5, 3, StepPending},
		{1, 1, StepCurrent},
		{5, 5, StepCurrent},
	}
	for _, tt := range tests {
		if got := StateOf(tt.stepID, tt.current); got != tt.want {
			t.Errorf("StateOf(%d, %d) = %q, want %q", tt.stepID, tt.current, got, tt.want)
		}
	}
}
