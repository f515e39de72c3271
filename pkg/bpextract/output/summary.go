package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/bacteria-search/bpextract/pkg/bpextract/models"
)

// CountByGroup counts records per organism group, largest first. Groups
// with equal counts keep the order in which they first appear.
func CountByGroup(records []models.BreakpointRecord) []models.GroupCount {
	index := make(map[string]int)
	var counts []models.GroupCount
	for _, r := range records {
		i, ok := index[r.OrganismGroup]
		if !ok {
			i = len(counts)
			index[r.OrganismGroup] = i
			counts = append(counts, models.GroupCount{Group: r.OrganismGroup})
		}
		counts[i].Count++
	}

	sort.SliceStable(counts, func(a, b int) bool {
		return counts[a].Count > counts[b].Count
	})
	return counts
}

// WriteSummary prints the total and the per-group breakdown.
func WriteSummary(w io.Writer, records []models.BreakpointRecord) error {
	if _, err := fmt.Fprintf(w, "Total breakpoints: %d\n\nBreakpoints by organism group:\n", len(records)); err != nil {
		return err
	}
	for _, gc := range CountByGroup(records) {
		if _, err := fmt.Fprintf(w, "  %s: %d\n", gc.Group, gc.Count); err != nil {
			return err
		}
	}
	return nil
}
