// Package ingest walks a source folder and registers new photos in the store.
package ingest

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/garagelog/photodex/internal/exifmeta"
	"github.com/garagelog/photodex/internal/store"
)

// hashPrefixBytes bounds how much of the file feeds the dedupe digest. Two
// distinct files sharing an identical first 8 KiB hash the same; the digest
// flags likely duplicates to the operator, it is not an equality guarantee.
const hashPrefixBytes = 8 * 1024

// imageExts are the file extensions the walk accepts, lowercased.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".heic": true,
	".heif": true,
}

// IterImages enumerates image files under folder by extension. With recursive
// set it descends into subdirectories.
func IterImages(folder string, recursive bool) ([]string, error) {
	var paths []string

	if recursive {
		err := filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && imageExts[strings.ToLower(filepath.Ext(path))] {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", folder, err)
		}
		return paths, nil
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", folder, err)
	}
	for _, e := range entries {
		if !e.IsDir() && imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			paths = append(paths, filepath.Join(folder, e.Name()))
		}
	}
	return paths, nil
}

// PrefixHash returns the hex SHA-1 of the first 8 KiB of the file.
func PrefixHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, hashPrefixBytes)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	sum := sha1.Sum(buf[:n])
	return hex.EncodeToString(sum[:]), nil
}

// Run ingests every image under folder using an insert-if-path-absent policy:
// a previously-seen path is silently skipped without re-extraction. Returns
// the count of newly inserted photos.
func Run(st *store.Store, folder string, recursive bool) (int, error) {
	paths, err := IterImages(folder, recursive)
	if err != nil {
		return 0, err
	}

	inserted := 0
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			slog.Warn("Skipping unresolvable path", "path", p, "err", err)
			continue
		}

		seen, err := st.HasPhoto(abs)
		if err != nil {
			return inserted, err
		}
		if seen {
			continue
		}

		hash, err := PrefixHash(abs)
		if err != nil {
			slog.Warn("Skipping unreadable file", "path", abs, "err", err)
			continue
		}
		meta := exifmeta.Extract(abs)

		photo := &store.Photo{
			Path:        abs,
			TakenAt:     meta.TakenAt,
			Lat:         meta.Lat,
			Lon:         meta.Lon,
			PrefixSHA1:  hash,
			Width:       meta.Width,
			Height:      meta.Height,
			Orientation: meta.Orientation,
		}
		if err := st.InsertPhoto(photo); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
