package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// HasPhoto reports whether a photo with this path has already been ingested.
func (s *Store) HasPhoto(path string) (bool, error) {
	var n int64
	if err := s.db.Model(&Photo{}).Where("path = ?", path).Count(&n).Error; err != nil {
		return false, fmt.Errorf("failed to check path %s: %w", path, err)
	}
	return n > 0, nil
}

// InsertPhoto inserts a new photo record.
func (s *Store) InsertPhoto(p *Photo) error {
	if err := s.db.Create(p).Error; err != nil {
		return fmt.Errorf("failed to insert photo %s: %w", p.Path, err)
	}
	return nil
}

// PhotoByPath returns the photo with the given path, or nil if none exists.
func (s *Store) PhotoByPath(path string) (*Photo, error) {
	var p Photo
	err := s.db.Where("path = ?", path).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up photo %s: %w", path, err)
	}
	return &p, nil
}

// PhotosByCaptureTime returns all photos ordered by capture timestamp
// ascending. SQLite sorts NULL timestamps first, so metadata-free photos
// surface at the head of the pass.
func (s *Store) PhotosByCaptureTime() ([]Photo, error) {
	var photos []Photo
	if err := s.db.Order("taken_at").Find(&photos).Error; err != nil {
		return nil, fmt.Errorf("failed to load photos: %w", err)
	}
	return photos, nil
}

// Photos returns every photo record.
func (s *Store) Photos() ([]Photo, error) {
	var photos []Photo
	if err := s.db.Find(&photos).Error; err != nil {
		return nil, fmt.Errorf("failed to load photos: %w", err)
	}
	return photos, nil
}

// AssignVehicle commits a vehicle assignment for a single photo. Each call is
// its own write so an interrupted review loop loses no prior decisions.
func (s *Store) AssignVehicle(photoID, vehicleID uint) error {
	if err := s.db.Model(&Photo{}).Where("id = ?", photoID).
		Update("assigned_vehicle_id", vehicleID).Error; err != nil {
		return fmt.Errorf("failed to assign photo %d: %w", photoID, err)
	}
	return nil
}

// UpdatePhotoPath records a photo's new location after the organizer has
// moved or copied it, keeping the path-unique invariant intact.
func (s *Store) UpdatePhotoPath(photoID uint, path string) error {
	if err := s.db.Model(&Photo{}).Where("id = ?", photoID).
		Update("path", path).Error; err != nil {
		return fmt.Errorf("failed to update path for photo %d: %w", photoID, err)
	}
	return nil
}

// AssignedPhoto pairs a photo with its assigned vehicle for the organizer.
type AssignedPhoto struct {
	ID          uint
	Path        string
	VehicleSlug string
}

// AssignedPhotos returns every photo with a committed vehicle assignment,
// joined with the owning vehicle's slug.
func (s *Store) AssignedPhotos() ([]AssignedPhoto, error) {
	var rows []AssignedPhoto
	err := s.db.Model(&Photo{}).
		Select("photos.id, photos.path, vehicles.slug as vehicle_slug").
		Joins("JOIN vehicles ON vehicles.id = photos.assigned_vehicle_id").
		Where("photos.assigned_vehicle_id IS NOT NULL").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load assigned photos: %w", err)
	}
	return rows, nil
}
