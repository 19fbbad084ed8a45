package store

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	slugStrip    = regexp.MustCompile(`[^a-zA-Z0-9\-_\s]`)
	slugCollapse = regexp.MustCompile(`[\s_\-]+`)
)

// Slugify derives the machine-safe identifier for a vehicle name: lowercase,
// non-alphanumerics stripped, runs of whitespace/underscore/hyphen collapsed
// to a single hyphen. Deterministic, so two names that normalize identically
// resolve to the same vehicle.
func Slugify(name string) string {
	s := slugStrip.ReplaceAllString(name, "")
	s = strings.ToLower(strings.TrimSpace(s))
	return slugCollapse.ReplaceAllString(s, "-")
}

// EnsureVehicle resolves a vehicle by the slug of name, creating it if no
// match exists.
func (s *Store) EnsureVehicle(name string) (*Vehicle, error) {
	slug := Slugify(name)

	var v Vehicle
	err := s.db.Where("slug = ?", slug).First(&v).Error
	if err == nil {
		return &v, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up vehicle %s: %w", slug, err)
	}

	v = Vehicle{Name: name, Slug: slug}
	if err := s.db.Create(&v).Error; err != nil {
		return nil, fmt.Errorf("failed to create vehicle %s: %w", name, err)
	}
	return &v, nil
}

// Vehicles returns every vehicle record.
func (s *Store) Vehicles() ([]Vehicle, error) {
	var vehicles []Vehicle
	if err := s.db.Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to load vehicles: %w", err)
	}
	return vehicles, nil
}

// LinkVehiclePhoto records a seed-time link between a vehicle and a
// representative photo. Re-linking an existing pair is a no-op.
func (s *Store) LinkVehiclePhoto(vehicleID, photoID uint) error {
	link := VehiclePhoto{VehicleID: vehicleID, PhotoID: photoID}
	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
		return fmt.Errorf("failed to link vehicle %d to photo %d: %w", vehicleID, photoID, err)
	}
	return nil
}
