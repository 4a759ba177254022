// Package paths resolves where the metadata file lives on disk.
package paths
