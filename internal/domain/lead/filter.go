package lead

import (
	"sort"
	"strings"
)

// FilterParams narrow the admin lead listing. Status "all" (or empty)
// matches every status. Query matches the name case-insensitively or
// the phone literally.
type FilterParams struct {
	Status string
	Query  string
}

func Filter(leads []Lead, p FilterParams) []Lead {
	status := p.Status
	if status == "" {
		status = "all"
	}
	query := strings.ToLower(p.Query)

	out := make([]Lead, 0, len(leads))
	for _, l := range leads {
		if status != "all" && string(l.Status) != status {
			continue
		}
		if p.Query != "" {
			nameMatch := strings.Contains(strings.ToLower(l.Name), query)
			phoneMatch := strings.Contains(l.Phone, p.Query)
			if !nameMatch && !phoneMatch {
				continue
			}
		}
		out = append(out, l)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
