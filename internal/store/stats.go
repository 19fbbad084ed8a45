package store

import "fmt"

// WorkspaceCounts summarizes the store for the stats command. Field tags
// drive the YAML document the command prints.
type WorkspaceCounts struct {
	Photos        int64 `yaml:"photos"`
	WithTimestamp int64 `yaml:"with_timestamp"`
	WithGPS       int64 `yaml:"with_gps"`
	Assigned      int64 `yaml:"assigned"`
	Unassigned    int64 `yaml:"unassigned"`
	Sessions      int64 `yaml:"sessions"`
	Vehicles      int64 `yaml:"vehicles"`
	Suggestions   int64 `yaml:"suggestions"`
}

// Counts tallies the workspace.
func (s *Store) Counts() (WorkspaceCounts, error) {
	var c WorkspaceCounts

	type tally struct {
		dst   *int64
		model any
		where string
	}
	for _, t := range []tally{
		{&c.Photos, &Photo{}, ""},
		{&c.WithTimestamp, &Photo{}, "taken_at IS NOT NULL"},
		{&c.WithGPS, &Photo{}, "lat IS NOT NULL AND lon IS NOT NULL"},
		{&c.Assigned, &Photo{}, "assigned_vehicle_id IS NOT NULL"},
		{&c.Unassigned, &Photo{}, "assigned_vehicle_id IS NULL"},
		{&c.Sessions, &Session{}, ""},
		{&c.Vehicles, &Vehicle{}, ""},
		{&c.Suggestions, &Suggestion{}, ""},
	} {
		q := s.db.Model(t.model)
		if t.where != "" {
			q = q.Where(t.where)
		}
		if err := q.Count(t.dst).Error; err != nil {
			return c, fmt.Errorf("failed to count: %w", err)
		}
	}
	return c, nil
}
