package review

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/garagelog/photodex/internal/store"
)

func fixtureStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	if err := st.Migrate(); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	v, err := st.EnsureVehicle("Old Blue")
	if err != nil {
		t.Fatalf("Failed to create vehicle: %v", err)
	}
	var suggestions []store.Suggestion
	for i, path := range []string{"/inbox/a.jpg", "/inbox/b.jpg", "/inbox/c.jpg", "/inbox/d.jpg"} {
		if err := st.InsertPhoto(&store.Photo{Path: path}); err != nil {
			t.Fatalf("Failed to insert photo: %v", err)
		}
		suggestions = append(suggestions, store.Suggestion{
			PhotoID:   uint(i + 1),
			VehicleID: v.ID,
			Score:     float64(4 - i),
		})
	}
	if err := st.UpsertSuggestions(suggestions); err != nil {
		t.Fatalf("Failed to upsert suggestions: %v", err)
	}
	return st
}

func assignmentByPath(t *testing.T, st *store.Store, path string) *uint {
	t.Helper()
	p, err := st.PhotoByPath(path)
	if err != nil {
		t.Fatalf("Failed to load photo: %v", err)
	}
	if p == nil {
		t.Fatalf("Photo %s missing", path)
	}
	return p.AssignedVehicleID
}

func TestRunAcceptSkipReassignQuit(t *testing.T) {
	st := fixtureStore(t)

	// Photos arrive in descending score order: accept the first suggestion,
	// skip the second photo, type a new vehicle for the third, quit before
	// the fourth.
	in := strings.NewReader("\ns\nBrown Bomber\nq\n")
	var out bytes.Buffer

	assigned, err := Run(context.Background(), st, in, &out, 100)
	if err != nil {
		t.Fatalf("Failed to run review: %v", err)
	}
	if assigned != 2 {
		t.Errorf("Expected 2 assignments, got %d", assigned)
	}

	if got := assignmentByPath(t, st, "/inbox/a.jpg"); got == nil || *got != 1 {
		t.Error("Expected first photo accepted onto the suggested vehicle")
	}
	if got := assignmentByPath(t, st, "/inbox/b.jpg"); got != nil {
		t.Error("Expected skipped photo to stay unassigned")
	}

	bomber, err := st.EnsureVehicle("Brown Bomber")
	if err != nil {
		t.Fatalf("Failed to resolve vehicle: %v", err)
	}
	if got := assignmentByPath(t, st, "/inbox/c.jpg"); got == nil || *got != bomber.ID {
		t.Error("Expected typed name to create and assign a new vehicle")
	}
	if got := assignmentByPath(t, st, "/inbox/d.jpg"); got != nil {
		t.Error("Expected photo after quit to stay untouched")
	}
}

func TestRunQuitPreservesPriorDecisions(t *testing.T) {
	st := fixtureStore(t)

	in := strings.NewReader("\nq\n")
	var out bytes.Buffer
	assigned, err := Run(context.Background(), st, in, &out, 100)
	if err != nil {
		t.Fatalf("Failed to run review: %v", err)
	}
	if assigned != 1 {
		t.Errorf("Expected 1 assignment before quit, got %d", assigned)
	}
	if got := assignmentByPath(t, st, "/inbox/a.jpg"); got == nil {
		t.Error("Expected decision before quit to be committed")
	}
}

func TestRunCanceledContextStopsLoop(t *testing.T) {
	st := fixtureStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	assigned, err := Run(ctx, st, strings.NewReader("\n\n\n\n"), &out, 100)
	if err != nil {
		t.Fatalf("Failed to run review: %v", err)
	}
	if assigned != 0 {
		t.Errorf("Expected no assignments under a canceled context, got %d", assigned)
	}
}

func TestRunNoSuggestions(t *testing.T) {
	st, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()
	if err := st.Migrate(); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	var out bytes.Buffer
	assigned, err := Run(context.Background(), st, strings.NewReader(""), &out, 100)
	if err != nil {
		t.Fatalf("Failed to run review: %v", err)
	}
	if assigned != 0 {
		t.Errorf("Expected no assignments, got %d", assigned)
	}
	if !strings.Contains(out.String(), "No suggestions") {
		t.Errorf("Expected empty-state message, got %q", out.String())
	}
}
