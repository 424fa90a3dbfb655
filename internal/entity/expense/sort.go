package expense

import "sort"

// SortNewestFirst orders records by calendar date descending, then by
// creation time descending. Records with an unreadable date go last.
func SortNewestFirst(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		di, errI := records[i].Date.Day()
		dj, errJ := records[j].Date.Day()
		switch {
		case errI != nil || errJ != nil:
			return errI == nil && errJ != nil
		case !di.Equal(dj):
			return di.After(dj)
		default:
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
	})
}
