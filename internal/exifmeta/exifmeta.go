// Package exifmeta extracts capture metadata from image files on a strictly
// best-effort basis: a malformed or metadata-free file yields an all-null
// record, never an error, so ingestion always proceeds.
package exifmeta

import (
	"image"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	// Dimension probing for the formats the ingest walk accepts.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Metadata is the normalized capture record for one file. Every field is
// nullable; GPS coordinates are signed decimal degrees (negative for
// South/West).
type Metadata struct {
	TakenAt     *time.Time
	Lat         *float64
	Lon         *float64
	Width       *int
	Height      *int
	Orientation *string
}

// Extract reads capture metadata from the file at path. Pure function of the
// file contents; no side effects.
func Extract(path string) Metadata {
	var m Metadata

	f, err := os.Open(path)
	if err != nil {
		return m
	}
	defer f.Close()

	if cfg, _, err := image.DecodeConfig(f); err == nil {
		w, h := cfg.Width, cfg.Height
		m.Width, m.Height = &w, &h
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return m
	}

	x, err := exif.Decode(f)
	if err != nil {
		return m
	}

	if tm, err := x.DateTime(); err == nil {
		m.TakenAt = &tm
	}
	if lat, lon, err := x.LatLong(); err == nil {
		m.Lat, m.Lon = &lat, &lon
	}
	if tag, err := x.Get(exif.Orientation); err == nil {
		if v, err := tag.Int(0); err == nil {
			o := strconv.Itoa(v)
			m.Orientation = &o
		}
	}
	return m
}
