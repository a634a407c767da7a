package gen

import (
	"fmt"
	"os"
	"sort"

	"facette.io/natsort"
	"gopkg.in/yaml.v3"

	"github.com/amp-labs/amp-dyneq/errors"
)

// ErrInvalidManifest is wrapped by every manifest validation failure.
var ErrInvalidManifest = fmt.Errorf("%w: invalid manifest", errors.ErrMalformedInvocation)

// Target is one expansion request within a manifest.
type Target struct {
	// Expand is the declarative invocation, e.g. "Shape" or
	// "[T] Container[T] where T comparable".
	Expand string `yaml:"expand"`

	// Box additionally emits the owning-box comparison operators.
	Box bool `yaml:"box"`
}

// Manifest describes one generated file.
type Manifest struct {
	// Package is the package clause of the generated file.
	Package string `yaml:"package"`

	// Output is the path the generated file is written to.
	Output string `yaml:"output"`

	// DyneqImport overrides the import path of the capability package.
	DyneqImport string `yaml:"dyneqImport"`

	// Imports lists extra imports the expanded interfaces need, e.g. the
	// package of a qualified interface path.
	Imports []string `yaml:"imports"`

	// Targets are the interfaces to expand.
	Targets []Target `yaml:"targets"`
}

// Load reads and validates a manifest file.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m Manifest

	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	if err := m.Validate(); err != nil {
		return Manifest{}, fmt.Errorf("%s: %w", path, err)
	}

	m.sortTargets()

	return m, nil
}

// Validate checks the manifest for structural problems. Invocation syntax
// is checked later, during expansion.
func (m Manifest) Validate() error {
	if m.Package == "" {
		return fmt.Errorf("%w: package is required", ErrInvalidManifest)
	}

	if m.Output == "" {
		return fmt.Errorf("%w: output is required", ErrInvalidManifest)
	}

	if len(m.Targets) == 0 {
		return fmt.Errorf("%w: at least one target is required", ErrInvalidManifest)
	}

	for i, t := range m.Targets {
		if t.Expand == "" {
			return fmt.Errorf("%w: target %d has an empty expand", ErrInvalidManifest, i)
		}
	}

	return nil
}

func (m Manifest) importPath() string {
	if m.DyneqImport != "" {
		return m.DyneqImport
	}

	return DefaultImport
}

// sortTargets orders targets naturally by their invocation text so the
// emitted file is deterministic regardless of manifest order.
func (m *Manifest) sortTargets() {
	keys := make([]string, 0, len(m.Targets))
	for _, t := range m.Targets {
		keys = append(keys, t.Expand)
	}

	natsort.Sort(keys)

	rank := make(map[string]int, len(keys))

	for i, k := range keys {
		if _, ok := rank[k]; !ok {
			rank[k] = i
		}
	}

	sort.SliceStable(m.Targets, func(i, j int) bool {
		return rank[m.Targets[i].Expand] < rank[m.Targets[j].Expand]
	})
}
