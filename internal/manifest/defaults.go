package manifest

import (
	"github.com/skagedal/create-program/internal/templates"
)

// Generated values that do not depend on the program name.
const (
	ModuleType    = "module"
	BuildOutput   = "build/src/index.js"
	BuildCommand  = "tsc -p tsconfig.json"
	JestCommand   = "jest"
	NodeTestGlob  = "src/**/*.test.ts"
	NodeTestCmd   = `node --test "` + NodeTestGlob + `"`
	LatestVersion = "latest"
)

// Scripts is the generated scripts block. Field order is the output order.
type Scripts struct {
	Test  string `json:"test"`
	Build string `json:"build"`
}

// baseDevDependencies are declared for every program.
var baseDevDependencies = []string{"@tsconfig/node24", "@types/node", "typescript"}

// jestDevDependencies are added when the program is tested with jest.
var jestDevDependencies = []string{"@types/jest", "jest", "ts-jest"}

// DevDependencies returns the generated devDependencies for runner. The
// node-native runner needs nothing beyond the base set.
func DevDependencies(runner templates.TestRunner) map[string]string {
	deps := make(map[string]string)
	for _, d := range baseDevDependencies {
		deps[d] = LatestVersion
	}
	if runner == templates.Jest {
		for _, d := range jestDevDependencies {
			deps[d] = LatestVersion
		}
	}
	return deps
}

// TestCommand returns the scripts.test value for runner.
func TestCommand(runner templates.TestRunner) string {
	if runner == templates.NodeJS {
		return NodeTestCmd
	}
	return JestCommand
}

// Defaults builds the generated manifest for a program named name. Values
// are computed fresh on every call.
func Defaults(name string, runner templates.TestRunner) (*Manifest, error) {
	m := New()
	fields := []struct {
		key   string
		value any
	}{
		{KeyName, name},
		{KeyBin, templates.BinPath(name)},
		{KeyMain, BuildOutput},
		{KeyType, ModuleType},
		{KeyDevDependencies, DevDependencies(runner)},
		{KeyScripts, Scripts{Test: TestCommand(runner), Build: BuildCommand}},
	}
	for _, f := range fields {
		if err := m.Set(f.key, f.value); err != nil {
			return nil, err
		}
	}
	return m, nil
}
