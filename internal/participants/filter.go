package participants

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Filter returns the participants whose name, email or event label contains
// term, ignoring case. An empty term returns every participant. Order is
// preserved and the input is never modified.
func Filter(all []Participant, term string) []Participant {
	if term == "" {
		return slices.Clone(all)
	}

	// cases.Caser keeps state between calls and is not safe to share.
	fold := cases.Fold()
	needle := fold.String(term)

	out := make([]Participant, 0, len(all))
	for _, p := range all {
		if strings.Contains(fold.String(p.Name), needle) ||
			strings.Contains(fold.String(p.Email), needle) ||
			strings.Contains(fold.String(p.Event), needle) {
			out = append(out, p)
		}
	}
	return out
}
