package conversation

// Step identifies the current position within the scripted dialog.
type Step string

const (
	StepStart             Step = "START"
	StepWaitingName       Step = "WAITING_NAME"
	StepWaitingTopSize    Step = "WAITING_TOP_SIZE"
	StepWaitingBottomSize Step = "WAITING_BOTTOM_SIZE"
	StepConfirmData       Step = "CONFIRM_DATA"
	StepAskMoreHelp       Step = "ASK_MORE_HELP"
)

// Valid reports whether s is a member of the closed step set.
func (s Step) Valid() bool {
	switch s {
	case StepStart, StepWaitingName, StepWaitingTopSize,
		StepWaitingBottomSize, StepConfirmData, StepAskMoreHelp:
		return true
	}
	return false
}

// Data holds the fields collected during one pass through the script.
// It is wiped wholesale whenever the script restarts.
type Data struct {
	Name       string `json:"name,omitempty"`
	TopSize    string `json:"top_size,omitempty"`
	BottomSize string `json:"bottom_size,omitempty"`
}

// State is the dialog state for a single sender.
type State struct {
	Step Step `json:"step"`
	Data Data `json:"data"`
}

// NewState returns the state for a sender that has never written before.
func NewState() State {
	return State{Step: StepStart}
}
