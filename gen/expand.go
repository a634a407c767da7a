package gen

import (
	"fmt"
	"log/slog"

	"github.com/alitto/pond/v2"

	"github.com/amp-labs/amp-dyneq/errors"
)

// Expander expands manifests into generated Go source.
type Expander struct {
	log *slog.Logger
}

// New creates an Expander. A nil logger falls back to slog's default.
func New(log *slog.Logger) *Expander {
	if log == nil {
		log = slog.Default()
	}

	return &Expander{log: log}
}

// Expand parses every target of the manifest and renders the generated
// file. Parse failures across targets are accumulated so one run reports
// them all.
func (e *Expander) Expand(m Manifest) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	model := fileModel{
		Package:  m.Package,
		Checksum: checksum(m),
		Import:   m.importPath(),
		Imports:  m.Imports,
	}

	var errs errors.Collection

	for _, t := range m.Targets {
		inv, err := Parse(t.Expand)
		if err != nil {
			errs.Add(err)

			continue
		}

		e.log.Debug("expanding target",
			"path", inv.Path,
			"generic", inv.Generic(),
			"box", t.Box)

		model.Targets = append(model.Targets, buildTarget(inv, t.Box))
	}

	if errs.HasError() {
		return nil, errs.GetError()
	}

	src, err := renderFile(model)
	if err != nil {
		return nil, err
	}

	e.log.Info("expanded manifest",
		"package", m.Package,
		"targets", len(m.Targets),
		"bytes", len(src))

	return src, nil
}

// Result is the outcome of expanding one manifest in a batch.
type Result struct {
	Manifest Manifest
	Source   []byte
}

// ExpandAll expands several manifests concurrently on a bounded worker
// pool. All failures are accumulated; results are returned for the
// manifests that succeeded, in input order.
func (e *Expander) ExpandAll(manifests []Manifest, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}

	pool := pond.NewPool(workers)
	defer pool.StopAndWait()

	var (
		sources = make([][]byte, len(manifests))
		tasks   = make([]pond.Task, 0, len(manifests))
	)

	for i, m := range manifests {
		tasks = append(tasks, pool.SubmitErr(func() error {
			src, err := e.Expand(m)
			if err != nil {
				return fmt.Errorf("expanding %s: %w", m.Output, err)
			}

			sources[i] = src

			return nil
		}))
	}

	var errs errors.Collection

	for _, task := range tasks {
		errs.Add(task.Wait())
	}

	results := make([]Result, 0, len(manifests))

	for i, m := range manifests {
		if sources[i] != nil {
			results = append(results, Result{Manifest: m, Source: sources[i]})
		}
	}

	return results, errs.GetError()
}
