// Package review is the interactive consumption of suggestion output: the
// operator confirms, corrects, or skips the top-scored vehicle per photo.
package review

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/garagelog/photodex/internal/store"
)

const (
	skipToken = "s"
	quitToken = "q"
)

// Run walks the best suggestion per unassigned photo, ordered by score
// descending, prompting on each: empty input accepts the suggestion, "s"
// skips the photo, "q" stops the loop, and any other text is taken as a
// vehicle name, resolved by slug or created fresh. Every decision is
// committed immediately so an interrupted session loses nothing. Returns the
// number of photos assigned.
func Run(ctx context.Context, st *store.Store, in io.Reader, out io.Writer, limit int) (int, error) {
	items, err := st.TopSuggestions(limit)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		fmt.Fprintln(out, "No suggestions to review.")
		return 0, nil
	}

	fmt.Fprintln(out, "Review suggestions: [enter] accept, 's' skip, 'q' quit, anything else names a vehicle")
	scanner := bufio.NewScanner(in)

	assigned := 0
	for _, item := range items {
		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "\nReview interrupted.")
			return assigned, nil
		default:
		}

		fmt.Fprintf(out, "\nPhoto %d: %s\n", item.PhotoID, item.PhotoPath)
		fmt.Fprintf(out, "Top suggestion: %s (score=%.3f)\n", item.VehicleName, item.Score)
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			break
		}
		choice := strings.TrimSpace(scanner.Text())

		switch choice {
		case quitToken:
			return assigned, scanner.Err()
		case skipToken:
			continue
		case "":
			if err := st.AssignVehicle(item.PhotoID, item.VehicleID); err != nil {
				return assigned, err
			}
			assigned++
			fmt.Fprintf(out, "Assigned to %s\n", item.VehicleName)
		default:
			v, err := st.EnsureVehicle(choice)
			if err != nil {
				return assigned, err
			}
			if err := st.AssignVehicle(item.PhotoID, v.ID); err != nil {
				return assigned, err
			}
			assigned++
			fmt.Fprintf(out, "Assigned to %s\n", v.Name)
		}
	}
	return assigned, scanner.Err()
}
