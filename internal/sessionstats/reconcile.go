package sessionstats

import "github.com/claude/repsense/internal/workout"

// ReconcileEntries picks one of the two entry sources: whichever holds more
// normalized entries, with ties going to the session entries. The lists are
// never merged element by element since both are usually partial views of the
// same session.
func ReconcileEntries(entries, items []workout.Entry) []workout.Entry {
	if len(items) > len(entries) {
		return items
	}
	return entries
}

// ReconcileCounts merges the locally computed counts with the tracking UI's
// summary so that neither source can under-report. Completed never exceeds
// the total.
func ReconcileCounts(localTotal, localDone int, cs *ClientSummary) (total, done int) {
	total, done = localTotal, localDone
	if cs != nil {
		if cs.Planned != nil {
			total = max(total, *cs.Planned)
		}
		if cs.Completed != nil {
			done = max(done, *cs.Completed)
		}
	}
	return total, min(done, total)
}
