package store

import "time"

// Photo is one physical image file known to the workspace. Path is the
// dedupe key: re-ingesting a path that already exists is a no-op.
// EXIF-derived fields are pointers because capture metadata is frequently
// absent or unreadable.
type Photo struct {
	ID                uint    `gorm:"primaryKey"`
	Path              string  `gorm:"uniqueIndex;not null"`
	TakenAt           *time.Time
	Lat               *float64
	Lon               *float64
	PrefixSHA1        string
	Width             *int
	Height            *int
	Orientation       *string
	SessionID         *uint
	AssignedVehicleID *uint `gorm:"index"`
}

// Session is a maximal run of temporally-and-spatially-adjacent photos,
// approximating one outing with the camera. Ids are rewritten on every
// cluster run and must not be used as stable external keys.
type Session struct {
	ID        uint `gorm:"primaryKey"`
	StartAt   time.Time
	EndAt     time.Time
	CenterLat float64
	CenterLon float64
}

// Vehicle is a named physical vehicle the operator files photos under.
type Vehicle struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"uniqueIndex;not null"`
	Slug  string `gorm:"uniqueIndex;not null"`
	Color *string
	Plate *string
	VIN   *string
}

// VehiclePhoto links a vehicle to a representative photo recorded at seed
// time.
type VehiclePhoto struct {
	VehicleID uint `gorm:"primaryKey"`
	PhotoID   uint `gorm:"primaryKey"`
}

// Suggestion is a scored (photo, vehicle) candidate pairing awaiting operator
// confirmation. At most one row per pair; reruns overwrite the score.
type Suggestion struct {
	PhotoID   uint `gorm:"primaryKey"`
	VehicleID uint `gorm:"primaryKey"`
	Score     float64
}
