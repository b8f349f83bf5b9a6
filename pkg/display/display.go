package display

import (
	"time"

	"github.com/briandowns/spinner"

	"github.com/azman-project/azman/pkg/logger"
)

// NewSpinner starts a spinner so long az invocations (VM create, waited
// deletes) do not look hung. Callers stop it when the invocation returns.
func NewSpinner(message string) *spinner.Spinner {
	l := logger.Get()
	l.Debugf("Creating spinner: %s", message)

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Prefix = message + " "
	_ = s.Color("green")
	s.Start()

	return s
}
