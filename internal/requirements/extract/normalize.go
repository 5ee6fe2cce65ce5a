package extract

import (
	"github.com/google/uuid"

	"github.com/reqmaster-ai/reqmaster-backend/internal/requirements/domain"
)

// normalize validates the duck-typed payload into the model the rest of
// the pipeline assumes: absent arrays become empty slices, priorities are
// clamped to the three literals, and items without an id get one.
func normalize(p requirementsPayload) domain.Requirements {
	return domain.Requirements{
		ProjectName:        p.ProjectName,
		ClientName:         p.ClientName,
		Functional:         normalizeItems(p.Functional),
		NonFunctional:      normalizeItems(p.NonFunctional),
		Domain:             normalizeItems(p.Domain),
		Risks:              normalizeStrings(p.Risks),
		TimelineSuggestion: p.TimelineSuggestion,
		Notes:              normalizeStrings(p.Notes),
	}
}

func normalizeItems(in []itemPayload) []domain.RequirementItem {
	out := make([]domain.RequirementItem, 0, len(in))
	for _, it := range in {
		id := it.ID
		if id == "" {
			id = uuid.NewString()
		}
		out = append(out, domain.RequirementItem{
			ID:          id,
			Title:       it.Title,
			Description: it.Description,
			Priority:    domain.NormalizePriority(domain.Priority(it.Priority)),
		})
	}
	return out
}

func normalizeStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
