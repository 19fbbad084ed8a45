package store

import "fmt"

// ResetSessions wipes the sessions table and clears every photo's session id.
// Cluster runs call this first: session ids are deliberately not stable
// across reruns, and wiping keeps stale centroids out of suggestion scoring.
func (s *Store) ResetSessions() error {
	if err := s.db.Exec("DELETE FROM sessions").Error; err != nil {
		return fmt.Errorf("failed to clear sessions: %w", err)
	}
	if err := s.db.Exec("UPDATE photos SET session_id = NULL").Error; err != nil {
		return fmt.Errorf("failed to clear photo session ids: %w", err)
	}
	return nil
}

// CreateSession persists a session and stamps its member photos.
func (s *Store) CreateSession(sess *Session, memberIDs []uint) error {
	if err := s.db.Create(sess).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	if err := s.db.Model(&Photo{}).Where("id IN ?", memberIDs).
		Update("session_id", sess.ID).Error; err != nil {
		return fmt.Errorf("failed to stamp session %d members: %w", sess.ID, err)
	}
	return nil
}

// Sessions returns every session record.
func (s *Store) Sessions() ([]Session, error) {
	var sessions []Session
	if err := s.db.Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}
	return sessions, nil
}
