package manifest

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// distTagPattern matches registry dist-tags such as "latest" or "next".
var distTagPattern = regexp.MustCompile(`^[a-z][a-z0-9._-]*$`)

// nonRegistryPrefixes mark version specs that point somewhere other than
// the registry and are accepted without further checks.
var nonRegistryPrefixes = []string{
	"file:", "link:", "workspace:", "npm:", "git+", "git:", "github:", "http:", "https:",
}

// VersionIssue describes a devDependency whose version spec is neither a
// dist-tag nor a valid semver range.
type VersionIssue struct {
	Package string
	Spec    string
	Err     error
}

func (i VersionIssue) String() string {
	return fmt.Sprintf("devDependencies/%s: invalid version %q: %v", i.Package, i.Spec, i.Err)
}

// CheckVersionSpec validates a single version spec.
func CheckVersionSpec(spec string) error {
	spec = strings.TrimSpace(spec)
	if spec == "" || spec == "*" {
		return nil
	}
	for _, p := range nonRegistryPrefixes {
		if strings.HasPrefix(spec, p) {
			return nil
		}
	}
	if distTagPattern.MatchString(spec) {
		return nil
	}
	if _, err := semver.NewConstraint(spec); err != nil {
		return err
	}
	return nil
}

// CheckVersions validates every devDependencies entry of m. Issues are
// sorted by package name. A devDependencies value that is not an object of
// strings yields no version issues; the schema check reports it instead.
func CheckVersions(m *Manifest) []VersionIssue {
	var deps map[string]string
	if ok, err := m.Lookup(KeyDevDependencies, &deps); !ok || err != nil {
		return nil
	}

	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)

	var issues []VersionIssue
	for _, name := range names {
		if err := CheckVersionSpec(deps[name]); err != nil {
			issues = append(issues, VersionIssue{Package: name, Spec: deps[name], Err: err})
		}
	}
	return issues
}
