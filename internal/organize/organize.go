// Package organize files photos with committed vehicle assignments into
// per-vehicle folders under the workspace.
package organize

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/garagelog/photodex/internal/store"
)

// Run relocates every assigned photo to <destRoot>/<vehicle-slug>/<filename>,
// moving by default or copying when copyFiles is set. Two photos can share a
// basename under one vehicle; when the destination name is already taken the
// filename is suffixed with the photo id rather than overwriting. After a
// successful relocation the photo's stored path is updated to the
// destination, so a second run finds nothing pending and performs no I/O.
// Per-file errors are logged with the offending path and skipped; they do not
// halt the batch. Returns the number of photos relocated.
func Run(st *store.Store, destRoot string, copyFiles bool) (int, error) {
	rows, err := st.AssignedPhotos()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, row := range rows {
		dst := filepath.Join(destRoot, row.VehicleSlug, filepath.Base(row.Path))
		if row.Path == dst {
			// Already organized on a previous run.
			continue
		}
		if _, err := os.Stat(dst); err == nil {
			dst = suffixWithID(dst, row.ID)
			if _, err := os.Stat(dst); err == nil {
				slog.Error("Destination already exists, skipping", "photo", row.ID, "path", dst)
				continue
			}
		}

		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			slog.Error("Failed to create vehicle folder", "path", filepath.Dir(dst), "err", err)
			continue
		}
		if err := relocate(row.Path, dst, copyFiles); err != nil {
			slog.Error("Failed to organize photo", "path", row.Path, "err", err)
			continue
		}
		if err := st.UpdatePhotoPath(row.ID, dst); err != nil {
			slog.Error("Failed to record new path", "photo", row.ID, "path", dst, "err", err)
			continue
		}
		count++
	}
	return count, nil
}

// suffixWithID disambiguates a colliding destination name with the photo id:
// IMG_0001.jpg becomes IMG_0001-7.jpg for photo 7.
func suffixWithID(path string, id uint) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), id, ext)
}

func relocate(src, dst string, copyFiles bool) error {
	if copyFiles {
		return copyFile(src, dst)
	}
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	// Rename fails across devices; fall back to copy then remove.
	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	return out.Sync()
}
