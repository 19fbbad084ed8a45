package store

import (
	"fmt"
	"sort"

	"gorm.io/gorm/clause"
)

// UpsertSuggestions writes scored candidates, overwriting the score of any
// existing (photo, vehicle) row rather than duplicating it.
func (s *Store) UpsertSuggestions(suggestions []Suggestion) error {
	if len(suggestions) == 0 {
		return nil
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "photo_id"}, {Name: "vehicle_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score"}),
	}).Create(&suggestions).Error
	if err != nil {
		return fmt.Errorf("failed to upsert suggestions: %w", err)
	}
	return nil
}

// Suggestions returns every suggestion row.
func (s *Store) Suggestions() ([]Suggestion, error) {
	var suggestions []Suggestion
	if err := s.db.Find(&suggestions).Error; err != nil {
		return nil, fmt.Errorf("failed to load suggestions: %w", err)
	}
	return suggestions, nil
}

// TopSuggestion is the highest-scored candidate for one unassigned photo,
// ready for the review loop.
type TopSuggestion struct {
	PhotoID     uint
	PhotoPath   string
	VehicleID   uint
	VehicleName string
	Score       float64
}

// TopSuggestions returns the best suggestion per unassigned photo, ordered by
// score descending, at most limit rows. Photos that are already assigned are
// never surfaced, which is how stale suggestions retire.
func (s *Store) TopSuggestions(limit int) ([]TopSuggestion, error) {
	photos, err := s.Photos()
	if err != nil {
		return nil, err
	}
	suggestions, err := s.Suggestions()
	if err != nil {
		return nil, err
	}
	vehicles, err := s.Vehicles()
	if err != nil {
		return nil, err
	}

	vehicleNames := make(map[uint]string, len(vehicles))
	for _, v := range vehicles {
		vehicleNames[v.ID] = v.Name
	}

	best := make(map[uint]Suggestion)
	for _, sug := range suggestions {
		cur, ok := best[sug.PhotoID]
		if !ok || sug.Score > cur.Score || (sug.Score == cur.Score && sug.VehicleID < cur.VehicleID) {
			best[sug.PhotoID] = sug
		}
	}

	var top []TopSuggestion
	for _, p := range photos {
		if p.AssignedVehicleID != nil {
			continue
		}
		sug, ok := best[p.ID]
		if !ok {
			continue
		}
		top = append(top, TopSuggestion{
			PhotoID:     p.ID,
			PhotoPath:   p.Path,
			VehicleID:   sug.VehicleID,
			VehicleName: vehicleNames[sug.VehicleID],
			Score:       sug.Score,
		})
	}

	sort.Slice(top, func(i, j int) bool {
		if top[i].Score != top[j].Score {
			return top[i].Score > top[j].Score
		}
		return top[i].PhotoID < top[j].PhotoID
	})
	if limit > 0 && len(top) > limit {
		top = top[:limit]
	}
	return top, nil
}
