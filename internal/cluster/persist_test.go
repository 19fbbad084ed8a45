package cluster

import (
	"fmt"
	"testing"
	"time"

	"github.com/garagelog/photodex/internal/store"
)

func TestPersistStampsMembersAndRewritesOnRerun(t *testing.T) {
	st, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()
	if err := st.Migrate(); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	lat, lon := 35.4676, -97.5164
	for i := 0; i < 3; i++ {
		ts := base.Add(time.Duration(i) * 5 * time.Minute)
		photo := &store.Photo{Path: fmt.Sprintf("/inbox/%d.jpg", i), TakenAt: &ts, Lat: &lat, Lon: &lon}
		if err := st.InsertPhoto(photo); err != nil {
			t.Fatalf("Failed to insert photo: %v", err)
		}
	}
	// One metadata-free photo that must never join a session.
	if err := st.InsertPhoto(&store.Photo{Path: "/inbox/bare.jpg"}); err != nil {
		t.Fatalf("Failed to insert photo: %v", err)
	}

	n, err := Persist(st, 45*time.Minute, 150)
	if err != nil {
		t.Fatalf("Failed to cluster: %v", err)
	}
	if n != 1 {
		t.Fatalf("Expected 1 session, got %d", n)
	}

	photos, err := st.Photos()
	if err != nil {
		t.Fatalf("Failed to load photos: %v", err)
	}
	for _, p := range photos {
		if p.TakenAt == nil {
			if p.SessionID != nil {
				t.Error("Expected metadata-free photo to stay unstamped")
			}
			continue
		}
		if p.SessionID == nil {
			t.Errorf("Expected photo %s stamped with a session", p.Path)
		}
	}

	// A rerun wipes and rewrites; the member sets stay identical even though
	// the ids may not.
	if _, err := Persist(st, 45*time.Minute, 150); err != nil {
		t.Fatalf("Failed to re-cluster: %v", err)
	}
	sessions, err := st.Sessions()
	if err != nil {
		t.Fatalf("Failed to load sessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Errorf("Expected 1 session after rerun, got %d", len(sessions))
	}
	if sessions[0].CenterLat != lat || sessions[0].CenterLon != lon {
		t.Errorf("Expected centroid (%f, %f), got (%f, %f)",
			lat, lon, sessions[0].CenterLat, sessions[0].CenterLon)
	}
}
