package runtime

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinNodeVersion is the constraint the generated tsconfig targets.
const MinNodeVersion = ">=24"

// Binaries a generated program is built and run with.
const (
	NodeBinary = "node"
	NPMBinary  = "npm"
)

// Status classifies a single check.
type Status int

const (
	StatusOK Status = iota
	StatusMissing
	StatusWarn
)

// Tag returns the bracketed label printed in front of a check line.
func (s Status) Tag() string {
	switch s {
	case StatusOK:
		return "[ OK ]"
	case StatusMissing:
		return "[MISS]"
	default:
		return "[WARN]"
	}
}

// Check is the outcome of probing one part of the toolchain.
type Check struct {
	Name   string
	Status Status
	Detail string
}

func (c Check) String() string {
	return fmt.Sprintf("%s %s: %s", c.Status.Tag(), c.Name, c.Detail)
}

// Prober locates binaries and runs them. The zero value uses the real PATH.
type Prober struct {
	LookPath func(file string) (string, error)
	Output   func(ctx context.Context, name string, args ...string) ([]byte, error)
}

func (p *Prober) lookPath(file string) (string, error) {
	if p.LookPath != nil {
		return p.LookPath(file)
	}
	return exec.LookPath(file)
}

func (p *Prober) output(ctx context.Context, name string, args ...string) ([]byte, error) {
	if p.Output != nil {
		return p.Output(ctx, name, args...)
	}
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return out, nil
}

// CheckBinary reports whether name is on PATH.
func (p *Prober) CheckBinary(name string) Check {
	path, err := p.lookPath(name)
	if err != nil {
		return Check{Name: name, Status: StatusMissing, Detail: "not found on PATH"}
	}
	return Check{Name: name, Status: StatusOK, Detail: "found at " + path}
}

// CheckNodeVersion runs `node --version` and compares the result with
// MinNodeVersion.
func (p *Prober) CheckNodeVersion(ctx context.Context) Check {
	const name = "node version"

	path, err := p.lookPath(NodeBinary)
	if err != nil {
		return Check{Name: name, Status: StatusMissing, Detail: "node not found on PATH"}
	}

	out, err := p.output(ctx, path, "--version")
	if err != nil {
		return Check{Name: name, Status: StatusWarn, Detail: fmt.Sprintf("running node --version: %v", err)}
	}

	raw := strings.TrimSpace(string(out))
	ok, err := SatisfiesMinimum(raw)
	if err != nil {
		return Check{Name: name, Status: StatusWarn, Detail: err.Error()}
	}
	if !ok {
		return Check{Name: name, Status: StatusWarn, Detail: fmt.Sprintf("%s does not satisfy %s", raw, MinNodeVersion)}
	}
	return Check{Name: name, Status: StatusOK, Detail: raw}
}

// CheckAll runs every toolchain check in display order.
func (p *Prober) CheckAll(ctx context.Context) []Check {
	return []Check{
		p.CheckBinary(NodeBinary),
		p.CheckBinary(NPMBinary),
		p.CheckNodeVersion(ctx),
	}
}

// SatisfiesMinimum reports whether a node version string such as "v24.1.0"
// meets MinNodeVersion. The leading "v" is optional.
func SatisfiesMinimum(version string) (bool, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing node version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(MinNodeVersion)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", MinNodeVersion, err)
	}
	return c.Check(v), nil
}
