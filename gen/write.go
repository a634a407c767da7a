package gen

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrWouldClobber reports an existing output file that dyneq-gen did not
// generate. Overwriting it requires force or interactive confirmation.
var ErrWouldClobber = errors.New("output exists and was not generated by dyneq-gen")

// WriteOptions control how generated source reaches disk.
type WriteOptions struct {
	// Force overwrites outputs that lack the generated header.
	Force bool

	// Confirm, when set and Force is not, is asked before overwriting a
	// file without the generated header. Returning false skips the write
	// without an error.
	Confirm func(path string) (bool, error)
}

// Write places generated source at path. Existing files carrying the
// generated header are replaced freely, and left untouched when already
// byte-identical. The write itself goes through a uniquely named temp
// file in the target directory followed by a rename, so readers never
// observe a half-written file.
//
// It returns true when the file on disk changed.
func Write(path string, src []byte, opts WriteOptions) (bool, error) {
	existing, err := os.ReadFile(path)

	switch {
	case err == nil:
		if bytes.Equal(existing, src) {
			return false, nil
		}

		if !IsGenerated(existing) && !opts.Force {
			if opts.Confirm == nil {
				return false, fmt.Errorf("%w: %s", ErrWouldClobber, path)
			}

			ok, err := opts.Confirm(path)
			if err != nil {
				return false, fmt.Errorf("confirming overwrite of %s: %w", path, err)
			}

			if !ok {
				return false, nil
			}
		}
	case !errors.Is(err, os.ErrNotExist):
		return false, fmt.Errorf("reading existing output %s: %w", path, err)
	}

	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	if err := os.WriteFile(tmp, src, 0o644); err != nil { //nolint:gosec
		return false, fmt.Errorf("writing %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		if removeErr := os.Remove(tmp); removeErr != nil {
			return false, errors.Join(err, removeErr)
		}

		return false, fmt.Errorf("replacing %s: %w", path, err)
	}

	return true, nil
}
