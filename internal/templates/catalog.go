package templates

import (
	"embed"
	"fmt"
	"path"
)

//go:embed files
var filesFS embed.FS

// Kind names one logical file of a generated program.
type Kind int

// Artifact kinds known to the catalog.
const (
	GreetSource Kind = iota
	GreetTest
	IndexSource
	TSConfig
	TSConfigRelease
	JestConfig
	BinRunner
)

// Kinds lists every artifact kind in the order files are written.
var Kinds = []Kind{GreetSource, GreetTest, IndexSource, TSConfig, TSConfigRelease, JestConfig, BinRunner}

// BinExt is the extension of the generated executable entry point.
const BinExt = ".mjs"

type entry struct {
	name   string
	dest   string // destination relative to the program root; empty for BinRunner
	file   string // file name under files/<set>/
	varies bool   // true when jest and nodejs have separate variants
}

var entries = map[Kind]entry{
	GreetSource:     {name: "greet-source", dest: "src/greet.ts", file: "greet.ts"},
	GreetTest:       {name: "greet-test", dest: "src/greet.test.ts", file: "greet.test.ts", varies: true},
	IndexSource:     {name: "index-source", dest: "src/index.ts", file: "index.ts", varies: true},
	TSConfig:        {name: "tsconfig", dest: "tsconfig.json", file: "tsconfig.json", varies: true},
	TSConfigRelease: {name: "tsconfig-release", dest: "tsconfig.release.json", file: "tsconfig.release.json"},
	JestConfig:      {name: "jest-config", dest: "jest.config.mjs", file: "jest.config.mjs", varies: true},
	BinRunner:       {name: "bin-runner", file: "bin-runner.mjs"},
}

// String returns the logical artifact name, e.g. "greet-test".
func (k Kind) String() string {
	if e, ok := entries[k]; ok {
		return e.name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Artifact is one file of a generated program.
type Artifact struct {
	Kind    Kind
	Path    string // slash-separated, relative to the program root
	Content string
}

// Applies reports whether a program using runner gets an artifact of kind k.
// Only the jest configuration is runner-specific.
func Applies(k Kind, runner TestRunner) bool {
	if k == JestConfig {
		return runner == Jest
	}
	_, ok := entries[k]
	return ok
}

// Content returns the literal body for kind k under the given runner. Kinds
// that do not vary by runner ignore it. A kind that does not apply to the
// runner (the jest configuration under nodejs) has empty content.
func Content(k Kind, runner TestRunner) string {
	e, ok := entries[k]
	if !ok || !Applies(k, runner) || (e.varies && !runner.Valid()) {
		return ""
	}

	set := "common"
	if e.varies {
		set = string(runner)
	}

	data, err := filesFS.ReadFile(path.Join("files", set, e.file))
	if err != nil {
		// The embedded tree is fixed at build time; catalog_test covers
		// every kind and runner.
		panic(fmt.Sprintf("templates: missing embedded file for %s/%s: %v", set, e.file, err))
	}
	return string(data)
}

// BinPath returns the relative path of the executable entry point for a
// program named name.
func BinPath(name string) string {
	return path.Join("bin", name+BinExt)
}

// Select returns the artifact of kind k for a program named name. ok is
// false when the kind does not apply to runner.
func Select(k Kind, runner TestRunner, name string) (a Artifact, ok bool) {
	if !Applies(k, runner) {
		return Artifact{}, false
	}
	dest := entries[k].dest
	if k == BinRunner {
		dest = BinPath(name)
	}
	return Artifact{Kind: k, Path: dest, Content: Content(k, runner)}, true
}

// Artifacts returns every artifact that applies to runner, in write order.
func Artifacts(runner TestRunner, name string) []Artifact {
	var out []Artifact
	for _, k := range Kinds {
		if a, ok := Select(k, runner, name); ok {
			out = append(out, a)
		}
	}
	return out
}
