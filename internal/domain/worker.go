package domain

// WorkerState is a state of the consumer worker lifecycle.
type WorkerState int32

const (
	WorkerStateIdle WorkerState = iota
	WorkerStateConnecting
	WorkerStateRetrying
	WorkerStateSubscribed
	WorkerStateStopping
	WorkerStateStopped
	WorkerStateGivenUp
)

var workerStateNames = map[WorkerState]string{
	WorkerStateIdle:       "idle",
	WorkerStateConnecting: "connecting",
	WorkerStateRetrying:   "retrying",
	WorkerStateSubscribed: "subscribed",
	WorkerStateStopping:   "stopping",
	WorkerStateStopped:    "stopped",
	WorkerStateGivenUp:    "given_up",
}

func (s WorkerState) String() string {
	if name, ok := workerStateNames[s]; ok {
		return name
	}

	return "unknown"
}

// IsTerminal reports whether the worker will never consume again.
func (s WorkerState) IsTerminal() bool {
	return s == WorkerStateStopped || s == WorkerStateGivenUp
}

// ProcessingOutcome is the result of handing one delivery to a processor.
type ProcessingOutcome string

const (
	OutcomeProcessed ProcessingOutcome = "processed"
	OutcomeFailed    ProcessingOutcome = "failed"
)
