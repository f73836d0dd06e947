package domain

type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

// FreePlanNoteLimit is the maximum number of notes a free-plan tenant may hold.
const FreePlanNoteLimit = 3

func ValidPlan(p string) bool {
	switch Plan(p) {
	case PlanFree, PlanPro:
		return true
	}
	return false
}

func AllPlans() []Plan {
	return []Plan{PlanFree, PlanPro}
}

// CanCreateNote decides whether a tenant on the given plan may create
// another note, given the note count observed at request time. Pro tenants
// are never limited. The count is a snapshot, not a reservation: two
// concurrent creates can both observe count=2 and both succeed. The limit
// is best-effort.
func CanCreateNote(plan Plan, currentNoteCount int) bool {
	if plan == PlanPro {
		return true
	}
	return currentNoteCount < FreePlanNoteLimit
}
