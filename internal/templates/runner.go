package templates

import "fmt"

// TestRunner identifies the test tool a generated program is set up for.
type TestRunner string

// Supported test runners.
const (
	Jest   TestRunner = "jest"
	NodeJS TestRunner = "nodejs"
)

// DefaultTestRunner is used when no runner is configured.
const DefaultTestRunner = Jest

// TestRunners lists every supported runner in display order.
var TestRunners = []TestRunner{Jest, NodeJS}

// ParseTestRunner converts a user-supplied token into a TestRunner.
func ParseTestRunner(s string) (TestRunner, error) {
	switch TestRunner(s) {
	case Jest, NodeJS:
		return TestRunner(s), nil
	default:
		return "", fmt.Errorf("invalid test runner %q: must be 'jest' or 'nodejs'", s)
	}
}

// Valid reports whether r is one of the supported runners.
func (r TestRunner) Valid() bool {
	_, err := ParseTestRunner(string(r))
	return err == nil
}

// String implements the flag value interface.
func (r *TestRunner) String() string { return string(*r) }

// Set implements the flag value interface; invalid tokens are rejected at
// parse time.
func (r *TestRunner) Set(s string) error {
	parsed, err := ParseTestRunner(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Type implements the flag value interface.
func (r *TestRunner) Type() string { return "jest|nodejs" }
