// Package suggest scores unassigned photos against the known vehicles. Two
// independent signals are summed per vehicle: how many session-mates of the
// photo are already filed under that vehicle, and how close the photo's
// session centroid sits to centroids of sessions holding that vehicle's
// photos.
package suggest

import (
	"errors"
	"sort"

	"github.com/garagelog/photodex/internal/geo"
	"github.com/garagelog/photodex/internal/store"
)

// ErrNoVehicles is returned by Run when the catalog is empty: there is
// nothing to score against until the operator seeds a vehicle.
var ErrNoVehicles = errors.New("no vehicles in catalog")

// proximityCutoffM caps the spatial-proximity vote. A vehicle session
// centroid within the cutoff contributes (cutoff - d) / cutoff, a linear
// decay from 1.0 at zero distance to 0.0 at the cutoff.
const proximityCutoffM = 1000.0

// Snapshot is the scoring engine's read-only view of the store.
type Snapshot struct {
	Photos   []store.Photo
	Sessions []store.Session
	Vehicles []store.Vehicle
}

// Rank computes up to topN scored vehicle candidates for every unassigned
// photo. A photo with no session and no nearby vehicle evidence yields only
// zero-scored candidates, which is a valid outcome.
func Rank(snap Snapshot, topN int) []store.Suggestion {
	sessions := make(map[uint]store.Session, len(snap.Sessions))
	for _, s := range snap.Sessions {
		sessions[s.ID] = s
	}

	// Assigned-photo counts per (session, vehicle), and the distinct session
	// centroids holding each vehicle's assigned photos.
	sessionVotes := make(map[uint]map[uint]int)
	vehicleSessions := make(map[uint]map[uint]store.Session)
	for _, p := range snap.Photos {
		if p.AssignedVehicleID == nil || p.SessionID == nil {
			continue
		}
		sid, vid := *p.SessionID, *p.AssignedVehicleID
		if sessionVotes[sid] == nil {
			sessionVotes[sid] = make(map[uint]int)
		}
		sessionVotes[sid][vid]++
		if vehicleSessions[vid] == nil {
			vehicleSessions[vid] = make(map[uint]store.Session)
		}
		if s, ok := sessions[sid]; ok {
			vehicleSessions[vid][sid] = s
		}
	}

	var out []store.Suggestion
	for _, p := range snap.Photos {
		if p.AssignedVehicleID != nil {
			continue
		}

		scores := make(map[uint]float64, len(snap.Vehicles))
		for _, v := range snap.Vehicles {
			scores[v.ID] = 0
		}

		if p.SessionID != nil {
			// Session-majority vote: one point per session-mate already
			// assigned to the vehicle.
			for vid, n := range sessionVotes[*p.SessionID] {
				scores[vid] += float64(n)
			}

			// Spatial proximity vote against each vehicle's session centroids.
			if sess, ok := sessions[*p.SessionID]; ok {
				for _, v := range snap.Vehicles {
					for _, vs := range vehicleSessions[v.ID] {
						d := geo.HaversineM(sess.CenterLat, sess.CenterLon, vs.CenterLat, vs.CenterLon)
						if d < proximityCutoffM {
							scores[v.ID] += (proximityCutoffM - d) / proximityCutoffM
						}
					}
				}
			}
		}

		ranked := make([]store.Suggestion, 0, len(scores))
		for vid, score := range scores {
			ranked = append(ranked, store.Suggestion{PhotoID: p.ID, VehicleID: vid, Score: score})
		}
		sort.Slice(ranked, func(i, j int) bool {
			if ranked[i].Score != ranked[j].Score {
				return ranked[i].Score > ranked[j].Score
			}
			return ranked[i].VehicleID < ranked[j].VehicleID
		})
		if len(ranked) > topN {
			ranked = ranked[:topN]
		}
		out = append(out, ranked...)
	}
	return out
}

// Run loads the store, ranks every unassigned photo, and upserts the top-N
// candidates. Returns the number of photos scored.
func Run(st *store.Store, topN int) (int, error) {
	photos, err := st.Photos()
	if err != nil {
		return 0, err
	}
	sessions, err := st.Sessions()
	if err != nil {
		return 0, err
	}
	vehicles, err := st.Vehicles()
	if err != nil {
		return 0, err
	}
	if len(vehicles) == 0 {
		return 0, ErrNoVehicles
	}

	unassigned := 0
	for _, p := range photos {
		if p.AssignedVehicleID == nil {
			unassigned++
		}
	}

	suggestions := Rank(Snapshot{Photos: photos, Sessions: sessions, Vehicles: vehicles}, topN)
	if err := st.UpsertSuggestions(suggestions); err != nil {
		return 0, err
	}
	return unassigned, nil
}
