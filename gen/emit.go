package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"github.com/OneOfOne/xxhash"
)

// DefaultImport is the import path of the core capability package,
// overridable per manifest for forks and vendoring setups.
const DefaultImport = "github.com/amp-labs/amp-dyneq/dyneq"

// Header opens every generated file, in the form tooling recognizes.
const Header = "// Code generated by dyneq-gen. DO NOT EDIT."

// checksumPrefix tags the second header line; the hex that follows lets
// dyneq-gen recognize its own output and skip rewrites of current files.
const checksumPrefix = "// dyneq-gen:checksum "

// markerCombination is one point of the marker lattice the expansion
// covers. The empty combination is the bare interface.
type markerCombination struct {
	suffix  string
	markers []string
}

// combinations lists the four marker combinations, emitted in this order.
var combinations = []markerCombination{ //nolint:gochecknoglobals
	{suffix: "", markers: nil},
	{suffix: "Transferable", markers: []string{"dyneq.Transferable"}},
	{suffix: "Sharable", markers: []string{"dyneq.Sharable"}},
	{suffix: "TransferableSharable", markers: []string{"dyneq.Transferable", "dyneq.Sharable"}},
}

type variantModel struct {
	FuncName    string
	BoxFuncName string
	TypeParams  string
	Iface       string
	Total       string
}

type targetModel struct {
	Raw      string
	Path     string
	Generic  bool
	Variants []variantModel
}

type fileModel struct {
	Package  string
	Checksum string
	Import   string
	Imports  []string
	Targets  []targetModel
}

var fileTemplate = template.Must(template.New("dyneq").Parse(`{{/*
*/}}// Code generated by dyneq-gen. DO NOT EDIT.
// dyneq-gen:checksum {{.Checksum}}

package {{.Package}}

import (
	"{{.Import}}"
{{- range .Imports}}
	"{{.}}"
{{- end}}
)
{{range .Targets}}
// Equality operators for {{.Path}}, expanded from {{printf "%q" .Raw}}.
{{- if not .Generic}}
var _ dyneq.Eq = ({{.Path}})(nil)
{{- end}}
{{- range .Variants}}

// {{.FuncName}} reports whether a and b are equal: their runtime concrete
// types must be identical and the values equal under native equality.
func {{.FuncName}}{{.TypeParams}}(a, b {{.Iface}}) bool {
	return dyneq.Equal(a, b)
}
{{- if .BoxFuncName}}

// {{.BoxFuncName}} compares an owning box against a bare value of the
// same interface.
func {{.BoxFuncName}}{{.TypeParams}}(box *dyneq.Box[{{.Iface}}], value {{.Iface}}) bool {
	return box.EqualsValue(value)
}
{{- end}}

// Equality over {{.Iface}} is total, not merely partial.
{{.Total}}
{{- end}}
{{end}}`))

// buildTarget expands one parsed invocation into its emission model.
func buildTarget(inv Invocation, box bool) targetModel {
	target := targetModel{
		Raw:     inv.Raw,
		Path:    inv.Path,
		Generic: inv.Generic(),
	}

	for _, combo := range combinations {
		v := variantModel{
			FuncName:   "Equal" + inv.Name + combo.suffix,
			TypeParams: inv.TypeParams(),
			Iface:      combinedInterface(inv.Path, combo.markers),
		}

		if box {
			v.BoxFuncName = v.FuncName + "Box"
		}

		v.Total = totalDecl(inv, combo, v.Iface)

		target.Variants = append(target.Variants, v)
	}

	return target
}

// combinedInterface intersects the interface path with the combination's
// markers. The bare combination is the path itself.
func combinedInterface(path string, markers []string) string {
	if len(markers) == 0 {
		return path
	}

	return "interface{ " + path + "; " + strings.Join(markers, "; ") + " }"
}

// totalDecl renders the totality declaration for one variant. Non-generic
// targets use a blank var; generic ones need a generic alias so the type
// parameters stay bound.
func totalDecl(inv Invocation, combo markerCombination, iface string) string {
	if !inv.Generic() {
		return "var _ dyneq.Total[" + iface + "]"
	}

	alias := "total" + inv.Name + combo.suffix

	return "type " + alias + inv.TypeParams() + " = dyneq.Total[" + iface + "]"
}

// checksum hashes everything that determines the output, so an unchanged
// configuration reproduces a byte-identical header.
func checksum(m Manifest) string {
	h := xxhash.New64()

	_, _ = h.WriteString(m.Package)
	_, _ = h.WriteString(m.importPath())

	for _, imp := range m.Imports {
		_, _ = h.WriteString(imp)
	}

	for _, t := range m.Targets {
		_, _ = h.WriteString(t.Expand)

		if t.Box {
			_, _ = h.WriteString("+box")
		}
	}

	return fmt.Sprintf("%016x", h.Sum64())
}

// renderFile executes the template and gofmts the result.
func renderFile(m fileModel) ([]byte, error) {
	var buf bytes.Buffer

	if err := fileTemplate.Execute(&buf, m); err != nil {
		return nil, fmt.Errorf("rendering generated file: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated file: %w", err)
	}

	return src, nil
}

// IsGenerated reports whether data begins with the dyneq-gen header,
// meaning the file is ours to overwrite.
func IsGenerated(data []byte) bool {
	return bytes.HasPrefix(data, []byte(Header))
}

// FileChecksum extracts the checksum from a generated file's header, or
// "" when the header is absent.
func FileChecksum(data []byte) string {
	if !IsGenerated(data) {
		return ""
	}

	for line := range strings.Lines(string(data)) {
		if rest, ok := strings.CutPrefix(line, checksumPrefix); ok {
			return strings.TrimSpace(rest)
		}
	}

	return ""
}
