package calc

import "time"

// EventType identifies the type of a calculation event.
type EventType string

const (
	// EventCalculationDone is published after every successful calculation.
	EventCalculationDone EventType = "calculation.done"
	// EventHistoryCleared is published when the calculation log is wiped.
	EventHistoryCleared EventType = "history.cleared"
)

// Event is a calculation event carried on the in-process event bus.
type Event struct {
	Type       EventType `json:"type"`
	Source     Source    `json:"source"`
	Expression string    `json:"expression"`
	Result     string    `json:"result"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewCalculationDoneEvent creates an event recording a successful calculation.
func NewCalculationDoneEvent(source Source, expression, result string) Event {
	return Event{
		Type:       EventCalculationDone,
		Source:     source,
		Expression: expression,
		Result:     result,
		Timestamp:  time.Now(),
	}
}

// NewHistoryClearedEvent creates an event recording a history wipe.
func NewHistoryClearedEvent() Event {
	return Event{
		Type:      EventHistoryCleared,
		Timestamp: time.Now(),
	}
}
