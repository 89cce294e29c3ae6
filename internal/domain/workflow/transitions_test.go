package workflow

import (
	"testing"

	"tsmit_os/internal/domain/entities"
)

func testStatuses() []entities.Status {
	return []entities.Status{
		{ID: "open", Name: "Aberta", Order: 1, IsInitial: true, AllowedNextStatuses: []string{"analysis"}},
		{ID: "analysis", Name: "Em Análise", Order: 2, AllowedNextStatuses: []string{"repair", "pickup"}, AllowedPreviousStatuses: []string{"open"}},
		{ID: "repair", Name: "Em Reparo", Order: 3, AllowedNextStatuses: []string{"pickup"}, AllowedPreviousStatuses: []string{"analysis"}},
		{ID: "pickup", Name: "Pronta para Retirada", Order: 4, IsPickupStatus: true, TriggersEmail: true, AllowedNextStatuses: []string{"delivered"}},
		{ID: "delivered", Name: "Entregue", Order: 5, IsFinal: true},
	}
}

func statusByID(t *testing.T, id string) entities.Status {
	t.Helper()
	for _, s := range testStatuses() {
		if s.ID == id {
			return s
		}
	}
	t.Fatalf("unknown test status %q", id)
	return entities.Status{}
}

func TestComputeCandidates_NonPrivileged(t *testing.T) {
	all := testStatuses()
	got := ComputeCandidates(statusByID(t, "analysis"), all, false)

	if len(got) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(got))
	}
	// Backward transitions sort ahead of forward ones.
	if got[0].Status.ID != "open" || !got[0].Backward {
		t.Fatalf("expected backward candidate open first, got %+v", got[0])
	}
	// Forward candidates follow in ascending order.
	if got[1].Status.ID != "repair" || got[1].Backward {
		t.Fatalf("expected repair second, got %+v", got[1])
	}
	if got[2].Status.ID != "pickup" || got[2].Backward {
		t.Fatalf("expected pickup third, got %+v", got[2])
	}
}

func TestComputeCandidates_Privileged(t *testing.T) {
	all := testStatuses()
	got := ComputeCandidates(statusByID(t, "analysis"), all, true)

	if len(got) != len(all)-1 {
		t.Fatalf("expected %d candidates, got %d", len(all)-1, len(got))
	}
	for _, c := range got {
		if c.Status.ID == "analysis" {
			t.Fatalf("current status must not be a candidate")
		}
		if c.Backward {
			t.Fatalf("privileged candidates are never back-tagged")
		}
	}
	// Ascending by order.
	for i := 1; i < len(got); i++ {
		if got[i-1].Status.Order > got[i].Status.Order {
			t.Fatalf("candidates out of order: %+v", got)
		}
	}
}

func TestComputeCandidates_TerminalStatus(t *testing.T) {
	got := ComputeCandidates(statusByID(t, "delivered"), testStatuses(), false)
	if len(got) != 0 {
		t.Fatalf("expected no candidates from a terminal status, got %d", len(got))
	}
}

func TestIsAllowed(t *testing.T) {
	all := testStatuses()
	current := statusByID(t, "open")

	if !IsAllowed(current, "analysis", all, false) {
		t.Fatalf("open -> analysis should be allowed")
	}
	if IsAllowed(current, "delivered", all, false) {
		t.Fatalf("open -> delivered must be rejected for non-privileged actors")
	}
	if !IsAllowed(current, "delivered", all, true) {
		t.Fatalf("privileged actors may reach any status")
	}
	if !IsAllowed(current, "open", all, false) {
		t.Fatalf("staying on the current status is not a transition")
	}
}

func TestIsAllowed_BackwardTransition(t *testing.T) {
	all := testStatuses()
	if !IsAllowed(statusByID(t, "analysis"), "open", all, false) {
		t.Fatalf("analysis -> open is listed as a previous status and should be allowed")
	}
}
