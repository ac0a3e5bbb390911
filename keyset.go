package textcrypt

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// KeySet maps artifact file names to raw key bytes, as produced by Generate.
type KeySet map[string][]byte

// Names returns the artifact names in sorted order.
func (ks KeySet) Names() []string {
	names := make([]string, 0, len(ks))
	for name := range ks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteTo writes each artifact into dir and returns the written paths.
// Public keys (".pk") are written world-readable; everything else is
// readable by the owner only. Existing files are left untouched unless
// WithOverwrite is given. The set is written as a whole: if any artifact
// cannot be written, the files already written by this call are removed.
func (ks KeySet) WriteTo(dir string, opts ...WriteOption) ([]string, error) {
	cfg := writeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("output directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("output directory: %s is not a directory", dir)
	}

	names := ks.Names()
	targets := make([]string, 0, len(names))
	for _, name := range names {
		if name != filepath.Base(name) {
			return nil, fmt.Errorf("invalid artifact name %q", name)
		}
		path := filepath.Join(dir, name)
		if !cfg.overwrite {
			if _, err := os.Lstat(path); err == nil {
				return nil, fmt.Errorf("%w: %s", ErrArtifactExists, path)
			} else if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("stat %s: %w", path, err)
			}
		}
		targets = append(targets, path)
	}

	paths := make([]string, 0, len(targets))
	for i, path := range targets {
		if err := writeArtifact(path, ks[names[i]], artifactMode(names[i]), cfg.overwrite); err != nil {
			for _, written := range paths {
				os.Remove(written)
			}
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func artifactMode(name string) os.FileMode {
	if strings.HasSuffix(name, ".pk") {
		return 0o644
	}
	return 0o600
}

func writeArtifact(path string, data []byte, mode os.FileMode, overwrite bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, mode)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrArtifactExists, path)
		}
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
