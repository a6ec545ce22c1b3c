package shell

import (
	"max.ks1230/currconv/internal/entity/conversion"
	"max.ks1230/currconv/internal/model/notifier"
)

// Outcome tells the caller what kind of answer a command produced.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeInvalidInput
	OutcomeUnknownCurrency
	OutcomeStorageFailure
	OutcomeExportFailure
	OutcomeFailure
	OutcomeQuit
)

var outcomeNames = map[Outcome]string{
	OutcomeOK:              "ok",
	OutcomeInvalidInput:    "invalid_input",
	OutcomeUnknownCurrency: "unknown_currency",
	OutcomeStorageFailure:  "storage_failure",
	OutcomeExportFailure:   "export_failure",
	OutcomeFailure:         "failure",
	OutcomeQuit:            "quit",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

type Result struct {
	Outcome Outcome
	Message string
	Err     error
	// Record is set by a successful conversion.
	Record *conversion.Record
	// Alert is set when the conversion crossed the threshold.
	Alert *notifier.Alert
}

func (r Result) OK() bool {
	return r.Outcome == OutcomeOK || r.Outcome == OutcomeQuit
}

func ok(msg string) Result {
	return Result{Outcome: OutcomeOK, Message: msg}
}

func fail(outcome Outcome, msg string, err error) Result {
	return Result{Outcome: outcome, Message: msg, Err: err}
}
