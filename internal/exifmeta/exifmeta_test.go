package exifmeta

import (
	"bytes"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"
)

func TestExtractMissingFileIsAllNull(t *testing.T) {
	m := Extract(filepath.Join(t.TempDir(), "nope.jpg"))
	if m.TakenAt != nil || m.Lat != nil || m.Lon != nil ||
		m.Width != nil || m.Height != nil || m.Orientation != nil {
		t.Errorf("Expected all-null record for missing file, got %+v", m)
	}
}

func TestExtractGarbageIsAllNull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.jpg")
	if err := os.WriteFile(path, []byte("definitely not an image"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	m := Extract(path)
	if m.TakenAt != nil || m.Lat != nil || m.Lon != nil || m.Width != nil {
		t.Errorf("Expected all-null record for garbage file, got %+v", m)
	}
}

func TestExtractDimensionsWithoutEXIF(t *testing.T) {
	// A bare encoded JPEG has pixel dimensions but no EXIF block; the
	// extractor returns what it can and nulls for the rest.
	var buf bytes.Buffer
	img := image.NewGray(image.Rect(0, 0, 12, 8))
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("Failed to encode jpeg: %v", err)
	}
	path := filepath.Join(t.TempDir(), "plain.jpg")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	m := Extract(path)
	if m.Width == nil || m.Height == nil {
		t.Fatal("Expected pixel dimensions for a valid jpeg")
	}
	if *m.Width != 12 || *m.Height != 8 {
		t.Errorf("Expected 12x8, got %dx%d", *m.Width, *m.Height)
	}
	if m.TakenAt != nil || m.Lat != nil || m.Lon != nil {
		t.Error("Expected null capture metadata without an EXIF block")
	}
}
