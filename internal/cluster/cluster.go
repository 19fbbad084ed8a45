// Package cluster partitions photos into sessions: maximal runs of photos
// adjacent in both capture time and location, approximating one outing with
// the camera. The pass is greedy and single-shot; it never revisits an
// earlier boundary decision.
package cluster

import (
	"time"

	"github.com/garagelog/photodex/internal/geo"
	"github.com/garagelog/photodex/internal/store"
)

// Point is the clustering view of one photo.
type Point struct {
	ID      uint
	TakenAt *time.Time
	Lat     *float64
	Lon     *float64
}

// Run is one contiguous session produced by Partition.
type Run struct {
	Members   []uint
	StartAt   time.Time
	EndAt     time.Time
	CenterLat float64
	CenterLon float64
}

// Partition walks points (which must be ordered by capture time ascending)
// and greedily groups them into runs. A point missing a timestamp or a
// coordinate closes the current run and is itself left out of any session.
// Otherwise the point joins the current run when both the elapsed time since
// the previous point is within timeWindow and the great-circle distance is
// within distWindowM; breaking either window starts a new run.
func Partition(points []Point, timeWindow time.Duration, distWindowM float64) []Run {
	var runs []Run
	var current []Point

	flush := func() {
		if len(current) == 0 {
			return
		}
		runs = append(runs, finishRun(current))
		current = nil
	}

	for _, p := range points {
		if p.TakenAt == nil || p.Lat == nil || p.Lon == nil {
			flush()
			continue
		}
		if len(current) > 0 {
			prev := current[len(current)-1]
			gap := p.TakenAt.Sub(*prev.TakenAt)
			dist := geo.HaversineM(*prev.Lat, *prev.Lon, *p.Lat, *p.Lon)
			if gap > timeWindow || dist > distWindowM {
				flush()
			}
		}
		current = append(current, p)
	}
	flush()
	return runs
}

func finishRun(points []Point) Run {
	r := Run{StartAt: *points[0].TakenAt, EndAt: *points[0].TakenAt}
	lats := make([]float64, 0, len(points))
	lons := make([]float64, 0, len(points))
	for _, p := range points {
		r.Members = append(r.Members, p.ID)
		if p.TakenAt.Before(r.StartAt) {
			r.StartAt = *p.TakenAt
		}
		if p.TakenAt.After(r.EndAt) {
			r.EndAt = *p.TakenAt
		}
		lats = append(lats, *p.Lat)
		lons = append(lons, *p.Lon)
	}
	r.CenterLat, r.CenterLon, _ = geo.Centroid(lats, lons)
	return r
}

// Persist replaces the stored sessions with a fresh partition of all photos.
// Session ids are rewritten; they are not stable identifiers across runs.
// Returns the number of sessions created.
func Persist(st *store.Store, timeWindow time.Duration, distWindowM float64) (int, error) {
	photos, err := st.PhotosByCaptureTime()
	if err != nil {
		return 0, err
	}

	points := make([]Point, 0, len(photos))
	for _, p := range photos {
		points = append(points, Point{ID: p.ID, TakenAt: p.TakenAt, Lat: p.Lat, Lon: p.Lon})
	}
	runs := Partition(points, timeWindow, distWindowM)

	if err := st.ResetSessions(); err != nil {
		return 0, err
	}
	for _, r := range runs {
		sess := &store.Session{
			StartAt:   r.StartAt,
			EndAt:     r.EndAt,
			CenterLat: r.CenterLat,
			CenterLon: r.CenterLon,
		}
		if err := st.CreateSession(sess, r.Members); err != nil {
			return 0, err
		}
	}
	return len(runs), nil
}
