package models

// AdviceKind identifies which rule produced an advice message
type AdviceKind string

const (
	AdviceOverBudget AdviceKind = "over_budget"
	AdviceNearLimit  AdviceKind = "near_limit"
	AdviceFood       AdviceKind = "food"
	AdviceTransport  AdviceKind = "transport"
	AdviceUtilities  AdviceKind = "utilities"
	AdviceOnTrack    AdviceKind = "on_track"
)

// Advice is a single advisory message
type Advice struct {
	Kind    AdviceKind `json:"kind" yaml:"kind"`
	Message string     `json:"message" yaml:"message"`
}

// AdviceMessages returns only the message text of each advice, in order
func AdviceMessages(advice []Advice) []string {
	messages := make([]string, 0, len(advice))
	for _, a := range advice {
		messages = append(messages, a.Message)
	}
	return messages
}

// HasAdvice reports whether an advice of the given kind is present
func HasAdvice(advice []Advice, kind AdviceKind) bool {
	for _, a := range advice {
		if a.Kind == kind {
			return true
		}
	}
	return false
}
