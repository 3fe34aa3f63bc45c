package tracking

// The five fulfillment steps are a contract shared by every order in a batch:
// exactly 5, ordered, monotonic. Clients render 1..current-1 as completed,
// current as active (with the live status message), the rest as pending.

type Step struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

var Steps = []Step{
	{ID: 1, Label: "Order Placed"},
	{ID: 2, Label: "Order Accepted"},
	{ID: 3, Label: "Preparing Food"},
	{ID: 4, Label: "Out for Delivery"},
	{ID: 5, Label: "Delivered"},
}

type StepState string

const (
	StepCompleted StepState = "completed"
	StepCurrent   StepState = "current"
	StepPending   StepState = "pending"
)

func StateOf(stepID, currentStep int) StepState {
	switch {
	case stepID < currentStep:
		return StepCompleted
	case stepID == currentStep:
		return StepCurrent
	default:
		return StepPending
	}
}
