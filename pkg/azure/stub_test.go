package azure

import (
	"bytes"
	"context"
)

// stubExecutor records every invocation and answers from a canned respond
// function, standing in for the az binary.
type stubExecutor struct {
	calls     [][]string
	captures  []bool
	verifyErr error
	respond   func(command []string, capture bool) Outcome
}

func (s *stubExecutor) Command(args ...string) []string {
	return append([]string{ProgramName}, args...)
}

func (s *stubExecutor) VerifyAvailable(ctx context.Context) error {
	return s.verifyErr
}

func (s *stubExecutor) Execute(ctx context.Context, command []string, capture bool) Outcome {
	s.calls = append(s.calls, command)
	s.captures = append(s.captures, capture)
	if s.respond != nil {
		return s.respond(command, capture)
	}
	return success(true)
}

func (s *stubExecutor) reset() {
	s.calls = nil
	s.captures = nil
}

// newTestManager wires a Manager to the stub without the startup
// subscription fetch, so call counts start at zero.
func newTestManager(stub *stubExecutor) (*Manager, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return &Manager{exec: stub, out: buf}, buf
}

func respondWith(payload any) func([]string, bool) Outcome {
	return func([]string, bool) Outcome {
		return success(payload)
	}
}

func respondFailure(exitCode int, stderr string) func([]string, bool) Outcome {
	return func([]string, bool) Outcome {
		return failure(exitCode, stderr)
	}
}
