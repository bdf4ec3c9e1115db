package events

import "github.com/atomicstack/bookshelf/internal/logging"

type InputTracer struct{}

type inputReason string

const (
	InputReasonTooSmall inputReason = "too-small"
	InputReasonTooBig   inputReason = "too-big"
	InputReasonEmpty    inputReason = "empty"
	InputReasonTooLong  inputReason = "too-long"
)

var Input = InputTracer{}

func (InputTracer) Commit(prompt string, value interface{}) {
	logging.Trace("input.commit", map[string]interface{}{"prompt": prompt, "value": value})
}

func (InputTracer) Reject(prompt string, reason inputReason) {
	logging.Trace("input.reject", map[string]interface{}{"prompt": prompt, "reason": string(reason)})
}

func (InputTracer) Cancel(prompt string) {
	logging.Trace("input.cancel", map[string]interface{}{"prompt": prompt})
}
