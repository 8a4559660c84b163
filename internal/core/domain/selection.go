package domain

// Selection is the tri-state per-record selection decision.
// A record starts out undecided; the user then includes it in or
// excludes it from the working set. Modelled as an explicit enumeration
// rather than a nullable boolean so transition logic stays exhaustive.
type Selection int

const (
	// SelectionUnknown means no decision has been made yet.
	SelectionUnknown Selection = iota

	// SelectionIncluded means the record is part of the working set.
	SelectionIncluded

	// SelectionExcluded means the record has been rejected.
	SelectionExcluded
)

// String returns the human-readable selection state.
func (s Selection) String() string {
	switch s {
	case SelectionIncluded:
		return "included"
	case SelectionExcluded:
		return "excluded"
	default:
		return "undecided"
	}
}

// ParseSelection converts a stored integer back into a Selection,
// mapping out-of-range values to SelectionUnknown.
func ParseSelection(v int) Selection {
	switch Selection(v) {
	case SelectionIncluded, SelectionExcluded:
		return Selection(v)
	default:
		return SelectionUnknown
	}
}
