package project

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/skagedal/create-program/internal/gitignore"
	"github.com/skagedal/create-program/internal/manifest"
	"github.com/skagedal/create-program/internal/platform"
	"github.com/skagedal/create-program/internal/templates"
)

// Result holds the outcome of a materialization run.
type Result struct {
	Dir      string
	Name     string
	Files    []string // relative paths, in write order
	Warnings []string
}

// Materializer writes programs. Out receives the completion message and may
// be nil; Logger receives per-step detail and warnings.
type Materializer struct {
	Out    io.Writer
	Logger *zap.Logger
}

// New returns a Materializer. A nil logger discards log output.
func New(out io.Writer, logger *zap.Logger) *Materializer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Materializer{Out: out, Logger: logger}
}

// Materialize creates or updates the program described by opts.
func (m *Materializer) Materialize(opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	base := m.Logger
	if base == nil {
		base = zap.NewNop()
	}
	log := base.With(zap.String("dir", opts.Path))

	if err := os.MkdirAll(opts.Path, platform.DirPerm); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", opts.Path, err)
	}

	name, err := opts.ResolveName()
	if err != nil {
		return nil, err
	}
	log.Debug("resolved program name", zap.String("name", name))

	result := &Result{Dir: opts.Path, Name: name}

	if err := writeManifest(log, opts, name, result); err != nil {
		return nil, err
	}

	if err := writeArtifacts(log, opts, name, result,
		templates.GreetSource, templates.GreetTest, templates.IndexSource); err != nil {
		return nil, err
	}

	changed, err := gitignore.EnsureNodeModules(opts.Path)
	if err != nil {
		return nil, err
	}
	if changed {
		result.Files = append(result.Files, gitignore.FileName)
	}
	log.Debug("checked .gitignore", zap.Bool("changed", changed))

	if err := writeArtifacts(log, opts, name, result,
		templates.TSConfig, templates.TSConfigRelease, templates.JestConfig); err != nil {
		return nil, err
	}

	if err := writeArtifacts(log, opts, name, result, templates.BinRunner); err != nil {
		return nil, err
	}
	binPath := filepath.Join(opts.Path, filepath.FromSlash(templates.BinPath(name)))
	if err := platform.MakeExecutable(binPath); err != nil {
		return nil, err
	}

	if !opts.Quiet && m.Out != nil {
		if err := PrintNextSteps(m.Out, opts.Path, name); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// writeManifest reads any existing package.json, lays it over the generated
// defaults and writes the result back.
func writeManifest(log *zap.Logger, opts Options, name string, result *Result) error {
	existing, found, err := manifest.Read(opts.Path)
	if err != nil {
		return err
	}
	log.Debug("read existing manifest",
		zap.Bool("found", found), zap.Strings("keys", existing.Keys()))

	defaults, err := manifest.Defaults(name, opts.TestRunner)
	if err != nil {
		return err
	}

	merged := manifest.Overlay(defaults, existing)
	if err := manifest.Write(opts.Path, merged); err != nil {
		return err
	}
	result.Files = append(result.Files, manifest.FileName)

	checkManifest(log, merged, result)
	return nil
}

// checkManifest records schema and version issues as warnings. The merged
// manifest is already on disk; fields the user wrote are never changed.
func checkManifest(log *zap.Logger, merged *manifest.Manifest, result *Result) {
	validation, err := manifest.Validate(merged)
	if err != nil {
		warn(log, result, fmt.Sprintf("could not validate %s: %v", manifest.FileName, err))
	} else {
		for _, issue := range validation.Issues {
			warn(log, result, fmt.Sprintf("%s %s", manifest.FileName, issue))
		}
	}
	for _, issue := range manifest.CheckVersions(merged) {
		warn(log, result, fmt.Sprintf("%s %s", manifest.FileName, issue))
	}
}

func warn(log *zap.Logger, result *Result, msg string) {
	result.Warnings = append(result.Warnings, msg)
	log.Warn(msg)
}

// writeArtifacts writes the given kinds in order, creating parent
// directories first. Kinds that do not apply to the runner are skipped.
func writeArtifacts(log *zap.Logger, opts Options, name string, result *Result, kinds ...templates.Kind) error {
	for _, k := range kinds {
		a, ok := templates.Select(k, opts.TestRunner, name)
		if !ok {
			log.Debug("skipped artifact", zap.Stringer("kind", k))
			continue
		}

		dest := filepath.Join(opts.Path, filepath.FromSlash(a.Path))
		if err := os.MkdirAll(filepath.Dir(dest), platform.DirPerm); err != nil {
			return fmt.Errorf("creating directory %s: %w", filepath.Dir(dest), err)
		}
		if err := os.WriteFile(dest, []byte(a.Content), platform.FilePerm); err != nil {
			return fmt.Errorf("writing %s: %w", dest, err)
		}

		result.Files = append(result.Files, a.Path)
		log.Debug("wrote file", zap.Stringer("kind", k), zap.String("path", a.Path))
	}
	return nil
}
