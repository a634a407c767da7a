// Command dyneq-gen expands equality operators for abstract interfaces.
//
// Interfaces to expand come either from one or more yaml manifests or
// from -e flags:
//
//	dyneq-gen -c dyneq.yaml
//	dyneq-gen -p shapes -o shapes_dyneq.go -box -e "Shape" -e "[T] Container[T] where T comparable"
//
// Each manifest produces one generated file. Outputs that already exist
// are replaced only when they carry the dyneq-gen header; anything else
// requires -force or, with -i, interactive confirmation.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/google/uuid"

	"github.com/amp-labs/amp-dyneq/cli"
	"github.com/amp-labs/amp-dyneq/gen"
	"github.com/amp-labs/amp-dyneq/logger"
)

type stringList []string

func (l *stringList) String() string {
	return fmt.Sprint(*l)
}

func (l *stringList) Set(value string) error {
	*l = append(*l, value)

	return nil
}

//nolint:gochecknoglobals
var (
	configs     stringList
	expansions  stringList
	outputPath  = flag.String("o", "", "output file for -e expansions")
	packageName = flag.String("p", "", "package name for -e expansions")
	importPath  = flag.String("import", "", "override the dyneq import path")
	box         = flag.Bool("box", false, "also emit owning-box operators for -e expansions")
	force       = flag.Bool("force", false, "overwrite outputs not generated by dyneq-gen")
	interactive = flag.Bool("i", false, "ask before overwriting outputs not generated by dyneq-gen")
	workers     = flag.Int("workers", runtime.GOMAXPROCS(0), "manifests expanded concurrently")
	jsonLogs    = flag.Bool("json", false, "log in JSON")
	verbose     = flag.Bool("v", false, "log debug details")
)

func main() {
	flag.Var(&configs, "c", "manifest file (repeatable)")
	flag.Var(&expansions, "e", "declarative invocation (repeatable)")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	log := logger.Configure(logger.Options{
		JSON:     *jsonLogs,
		MinLevel: level,
	}).With("run_id", uuid.NewString())

	if err := run(log); err != nil {
		log.Error("expansion failed", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	manifests, err := collectManifests()
	if err != nil {
		return err
	}

	results, err := gen.New(log).ExpandAll(manifests, *workers)
	if err != nil {
		return err
	}

	opts := gen.WriteOptions{Force: *force}
	if *interactive && !*force {
		opts.Confirm = func(path string) (bool, error) {
			return cli.PromptConfirm(fmt.Sprintf("Overwrite %s (not generated by dyneq-gen)", path))
		}
	}

	for _, res := range results {
		changed, err := gen.Write(res.Manifest.Output, res.Source, opts)
		if err != nil {
			return err
		}

		if changed {
			log.Info("wrote generated file", "output", res.Manifest.Output)
		} else {
			log.Debug("output up to date", "output", res.Manifest.Output)
		}
	}

	return nil
}

// collectManifests merges -c manifests with the ad-hoc manifest described
// by -e/-p/-o flags.
func collectManifests() ([]gen.Manifest, error) {
	var manifests []gen.Manifest

	for _, path := range configs {
		m, err := gen.Load(path)
		if err != nil {
			return nil, err
		}

		manifests = append(manifests, m)
	}

	if len(expansions) > 0 {
		m := gen.Manifest{
			Package:     *packageName,
			Output:      *outputPath,
			DyneqImport: *importPath,
		}

		for _, raw := range expansions {
			m.Targets = append(m.Targets, gen.Target{Expand: raw, Box: *box})
		}

		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("with -e, both -p and -o are required: %w", err)
		}

		manifests = append(manifests, m)
	}

	if len(manifests) == 0 {
		return nil, fmt.Errorf("nothing to do: pass -c or -e (run with -h for usage)") //nolint:err113
	}

	return manifests, nil
}
