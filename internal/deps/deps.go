package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"forgectl/internal/config"
)

// Requirement defines an external dependency the launcher relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	// Installable marks a requirement the launcher can install on demand
	// instead of aborting when it is missing.
	Installable bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Installable bool
	Available   bool
	Detail      string
}

// Requirements returns the launcher's external dependency table.
func Requirements(cfg *config.Config) []Requirement {
	return []Requirement{
		{
			Name:        "Python",
			Command:     cfg.InterpreterBinary(),
			Description: "Required to run the MindForge service",
		},
		{
			Name:        "pip",
			Command:     cfg.PipBinary(),
			Description: "Required to install service packages",
		},
		{
			Name:        "MindForge",
			Command:     cfg.ServiceBinary(),
			Description: "The data-platform service itself",
			Installable: true,
		},
	}
}

// Check evaluates every requirement. It never mutates anything.
func Check(cfg *config.Config) []Status {
	return CheckBinaries(Requirements(cfg))
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Installable: req.Installable,
		}
		if cmd == "" {
			status.Available = false
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Available = false
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// PreconditionError reports a missing mandatory prerequisite. It is fatal;
// no installation is attempted for these.
type PreconditionError struct {
	Name    string
	Command string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("missing prerequisite %s (%q not found on PATH)", e.Name, e.Command)
}

// VerifyPrerequisites returns a PreconditionError when the interpreter or
// the package manager is missing. The installable service requirement is
// not considered here.
func VerifyPrerequisites(cfg *config.Config) error {
	for _, status := range Check(cfg) {
		if status.Installable || status.Available {
			continue
		}
		return &PreconditionError{Name: status.Name, Command: status.Command}
	}
	return nil
}
