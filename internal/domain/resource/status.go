package resource

import (
	"time"

	"coworking-admin/internal/domain/rental"
)

// ResolveStatus derives status, current rental and next-available date for
// every resource from a snapshot of rental records. Pure function of its
// inputs: the caller supplies now, and the input slice is not mutated.
//
// A resource is occupied by the first of its records whose period contains
// now (full timestamps, inclusive). Otherwise it is available and the next
// available date is the earliest future start, when one exists.
func ResolveStatus(resources []Resource, records []rental.Record, now time.Time) []Resource {
	resolved := make([]Resource, len(resources))

	for i, res := range resources {
		res.Status = StatusAvailable
		res.Current = nil
		res.NextAvailable = nil

		var nextStart *time.Time
		for j := range records {
			rec := records[j]
			if rec.ResourceID != res.ID {
				continue
			}

			if res.Current == nil && rec.Period.Contains(now) {
				res.Status = StatusOccupied
				res.Current = &records[j]
				end := rec.Period.End()
				res.NextAvailable = &end
				break
			}

			if start := rec.Period.Start(); start.After(now) {
				if nextStart == nil || start.Before(*nextStart) {
					s := start
					nextStart = &s
				}
			}
		}

		if res.Current == nil {
			res.NextAvailable = nextStart
		}
		resolved[i] = res
	}

	return resolved
}

// ResetStatus is the fetch-failure fallback: every resource renders as
// available with no next-available date rather than blocking the list.
func ResetStatus(resources []Resource) []Resource {
	resolved := make([]Resource, len(resources))
	for i, res := range resources {
		res.Status = StatusAvailable
		res.Current = nil
		res.NextAvailable = nil
		resolved[i] = res
	}
	return resolved
}
