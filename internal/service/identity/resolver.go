package identity

import (
	"strings"

	"github.com/hospomate/hospomate-backend-go/internal/domain/store"
)

const UnassignedRole = "Unassigned"

// ResolveJobTitle matches a POS display name against the local staff list. A staff
// record matches when the case-folded display name contains its case-folded, trimmed
// name. The first match in list order wins, so callers must pass a stably ordered list.
// Staff without a name never match; a match without a job title resolves to Unassigned.
func ResolveJobTitle(displayName string, staff []store.Staff) string {
	folded := strings.ToLower(displayName)
	for _, s := range staff {
		name := strings.ToLower(strings.TrimSpace(s.Name))
		if name == "" {
			continue
		}
		if strings.Contains(folded, name) {
			if s.JobTitle != nil && strings.TrimSpace(*s.JobTitle) != "" {
				return *s.JobTitle
			}
			return UnassignedRole
		}
	}
	return UnassignedRole
}

// Resolver memoises ResolveJobTitle for one staff list. It is not safe for
// concurrent use; build one per computation.
type Resolver struct {
	staff []store.Staff
	cache map[string]string
}

func NewResolver(staff []store.Staff) *Resolver {
	return &Resolver{
		staff: staff,
		cache: make(map[string]string),
	}
}

func (r *Resolver) JobTitle(displayName string) string {
	if title, ok := r.cache[displayName]; ok {
		return title
	}
	title := ResolveJobTitle(displayName, r.staff)
	r.cache[displayName] = title
	return title
}
