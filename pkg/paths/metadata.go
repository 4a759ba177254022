package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/clipflowpro/clipver/pkg/metadata"
)

// ResolveMetadata returns the metadata path to use. An explicit path wins;
// otherwise the path is derived from the running executable with
// [MetadataForExecutable].
func ResolveMetadata(explicit string) (string, error) {
	if explicit != "" {
		p, err := filepath.Abs(explicit)
		if err != nil {
			return "", fmt.Errorf("get absolute path: %w", err)
		}

		return p, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolve executable: %w", err)
	}

	return MetadataForExecutable(exe), nil
}

// MetadataForExecutable returns the metadata path for a tool installed at exe.
// Tools live one directory below the project root (for example `bin/` or
// `tools/`), so the file is looked up in the parent of exe's directory.
func MetadataForExecutable(exe string) string {
	return filepath.Join(filepath.Dir(filepath.Dir(exe)), metadata.FileName)
}
