package workflow

import (
	"sort"

	"tsmit_os/internal/domain/entities"
)

// Candidate is a status an actor may move an order to next. Backward marks
// transitions taken from the current status's allowed-previous list; the UI
// renders those as "back" buttons and they sort ahead of forward moves.
type Candidate struct {
	Status   entities.Status
	Backward bool
}

// ComputeCandidates returns the statuses the actor may transition to from
// the current status, ordered for presentation: backward transitions first,
// then ascending by the target status order field.
//
// Privileged actors (administrative override) may move to any other status
// unconditionally. Everyone else is bound by the current status's
// allowed-next and allowed-previous adjacency lists.
func ComputeCandidates(current entities.Status, all []entities.Status, privileged bool) []Candidate {
	var candidates []Candidate

	if privileged {
		for _, s := range all {
			if s.ID != current.ID {
				candidates = append(candidates, Candidate{Status: s})
			}
		}
	} else {
		next := make(map[string]bool, len(current.AllowedNextStatuses))
		for _, id := range current.AllowedNextStatuses {
			next[id] = true
		}
		prev := make(map[string]bool, len(current.AllowedPreviousStatuses))
		for _, id := range current.AllowedPreviousStatuses {
			prev[id] = true
		}
		for _, s := range all {
			if next[s.ID] {
				candidates = append(candidates, Candidate{Status: s})
			}
			if prev[s.ID] {
				candidates = append(candidates, Candidate{Status: s, Backward: true})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Backward != candidates[j].Backward {
			return candidates[i].Backward
		}
		return candidates[i].Status.Order < candidates[j].Status.Order
	})
	return candidates
}

// IsAllowed reports whether moving from the current status to targetID is a
// valid transition for the actor. Requesting the current status itself is
// not a transition and is always allowed (the engine treats it as a
// field-only update).
func IsAllowed(current entities.Status, targetID string, all []entities.Status, privileged bool) bool {
	if targetID == current.ID {
		return true
	}
	for _, c := range ComputeCandidates(current, all, privileged) {
		if c.Status.ID == targetID {
			return true
		}
	}
	return false
}
