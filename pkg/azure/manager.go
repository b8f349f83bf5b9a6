package azure

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/azman-project/azman/pkg/logger"
)

// Subscription is the read-only account snapshot fetched once at startup.
// Raw keeps the full az payload for callers that need fields beyond the
// extracted subset.
type Subscription struct {
	Name      string
	ID        string
	State     string
	TenantID  string
	IsDefault bool
	Raw       map[string]any
}

// Manager is the catalog of az operations. It holds the executor and the
// subscription snapshot; every operation is otherwise stateless and builds
// its command vector fresh per call.
type Manager struct {
	exec Executor
	sub  Subscription
	out  io.Writer
}

// NewManager builds a Manager and fetches the current subscription once.
// A missing subscription is not fatal; operations still run and the banner
// simply has nothing to show.
func NewManager(ctx context.Context, exec Executor) *Manager {
	return NewManagerWithOutput(ctx, exec, os.Stdout)
}

func NewManagerWithOutput(ctx context.Context, exec Executor, out io.Writer) *Manager {
	log := logger.Get()
	m := &Manager{exec: exec, out: out}

	outcome := exec.Execute(ctx, exec.Command("account", "show"), true)
	if !outcome.OK {
		log.Warnf("could not fetch current subscription: %s", outcome.Stderr)
		return m
	}
	if sub := outcome.Map(); sub != nil {
		m.sub = Subscription{
			Name:      getString(sub, "name", "Unknown"),
			ID:        getString(sub, "id", "Unknown"),
			State:     getString(sub, "state", "N/A"),
			TenantID:  getString(sub, "tenantId", "N/A"),
			IsDefault: getBool(sub, "isDefault", false),
			Raw:       sub,
		}
	}
	return m
}

// Subscription returns the cached account snapshot.
func (m *Manager) Subscription() Subscription {
	return m.sub
}

// HasSubscription reports whether the startup fetch produced a snapshot.
func (m *Manager) HasSubscription() bool {
	return m.sub.Raw != nil
}

// reportFailure logs and prints the attempted action with the az diagnostic.
// Failures abandon one operation; they never terminate the process.
func (m *Manager) reportFailure(action string, outcome Outcome) {
	log := logger.Get()
	diag := friendlyDiagnostic(outcome.Stderr)
	log.Errorf("failed to %s (exit %d): %s", action, outcome.ExitCode, diag)
	fmt.Fprintf(m.out, "Error: failed to %s\n", action)
	if diag != "" {
		fmt.Fprintf(m.out, "Details: %s\n", diag)
	}
}
