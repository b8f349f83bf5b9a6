package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/spf13/viper"

	"github.com/azman-project/azman/pkg/logger"
)

// ProgramName is the Azure CLI binary this tool orchestrates.
const ProgramName = "az"

// Executor runs az commands and returns normalized outcomes. The live
// implementation is CLI; tests substitute a recording stub.
type Executor interface {
	// Command builds a full invocation vector, program name first.
	Command(args ...string) []string
	// VerifyAvailable checks that the az binary resolves and answers a
	// version probe. Failure here is the one fatal precondition of the tool.
	VerifyAvailable(ctx context.Context) error
	// Execute runs the command to completion. When capture is true the
	// invocation requests JSON output and the payload is the decoded
	// structure, falling back to raw text when decoding fails.
	Execute(ctx context.Context, command []string, capture bool) Outcome
}

// CLI invokes the real az binary.
type CLI struct {
	program string
}

// NewCLI returns an executor for the az binary, honoring the
// azure.cli_path config override.
func NewCLI() *CLI {
	program := viper.GetString("azure.cli_path")
	if program == "" {
		program = ProgramName
	}
	return &CLI{program: program}
}

func (c *CLI) Command(args ...string) []string {
	return append([]string{c.program}, args...)
}

func (c *CLI) VerifyAvailable(ctx context.Context) error {
	out := c.Execute(ctx, c.Command("--version"), false)
	if !out.OK {
		return fmt.Errorf(
			"azure CLI %q is not installed or not in PATH: %s",
			c.program,
			out.Stderr,
		)
	}
	return nil
}

func (c *CLI) Execute(ctx context.Context, command []string, capture bool) Outcome {
	log := logger.Get()

	if len(command) == 0 {
		return failure(-1, "empty command")
	}

	args := command[1:]
	if capture {
		args = append(args, "--output", "json")
	}

	log.Debugf("Executing: %s %s", command[0], strings.Join(args, " "))

	// Arguments go through as a discrete vector; nothing is ever handed to
	// a shell, so user-supplied names cannot inject extra commands.
	cmd := exec.CommandContext(ctx, command[0], args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		diag := strings.TrimSpace(stderr.String())
		if diag == "" {
			diag = err.Error()
		}
		return failure(exitCode, diag)
	}

	if capture && stdout.Len() > 0 {
		var payload any
		if err := json.Unmarshal(stdout.Bytes(), &payload); err != nil {
			// The invocation itself succeeded; keep the raw text but leave
			// a trace so malformed responses are not silently swallowed.
			log.Warnf(
				"undecodable output from %q: %v",
				strings.Join(command, " "),
				err,
			)
			return success(stdout.String())
		}
		return success(payload)
	}

	return success(true)
}
