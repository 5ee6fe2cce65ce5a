package document

import (
	"fmt"
	"strings"

	"github.com/reqmaster-ai/reqmaster-backend/internal/requirements/domain"
)

type backlogItem struct {
	domain.RequirementItem
	Type string
}

func storyPoints(p domain.Priority) int {
	switch p {
	case domain.PriorityHigh:
		return 8
	case domain.PriorityMedium:
		return 5
	default:
		return 3
	}
}

func backlogBlock(items []backlogItem, offset int) string {
	blocks := make([]string, 0, len(items))
	for i, item := range items {
		blocks = append(blocks, fmt.Sprintf(`
[%s] #%d: %s
Priority: %s
Story Points: %d
Description: %s
`, item.Type, offset+i+1, item.Title, item.Priority, storyPoints(item.Priority), item.Description))
	}
	return strings.Join(blocks, "\n")
}

// AgileBacklog merges functional (Feature), non-functional (Technical) and
// domain (Domain) items into one pool, partitions by priority and renders
// each bucket with derived story points. Numbering is global and
// cumulative across the three buckets.
func (g *Generator) AgileBacklog(r domain.Requirements) string {
	pool := make([]backlogItem, 0, len(r.Functional)+len(r.NonFunctional)+len(r.Domain))
	for _, it := range r.Functional {
		pool = append(pool, backlogItem{RequirementItem: it, Type: "Feature"})
	}
	for _, it := range r.NonFunctional {
		pool = append(pool, backlogItem{RequirementItem: it, Type: "Technical"})
	}
	for _, it := range r.Domain {
		pool = append(pool, backlogItem{RequirementItem: it, Type: "Domain"})
	}

	var high, medium, low []backlogItem
	for _, it := range pool {
		switch it.Priority {
		case domain.PriorityHigh:
			high = append(high, it)
		case domain.PriorityMedium:
			medium = append(medium, it)
		default:
			low = append(low, it)
		}
	}

	risks := make([]string, 0, len(r.Risks))
	for i, risk := range r.Risks {
		risks = append(risks, fmt.Sprintf("%d. %s", i+1, risk))
	}

	return fmt.Sprintf(`AGILE PRODUCT BACKLOG
================================================================================
Project: %s
Client: %s
Generated: %s

SPRINT PLANNING SUGGESTION
--------------------------------------------------------------------------------
%s

HIGH PRIORITY ITEMS (Sprint 1-2)
--------------------------------------------------------------------------------
%s

MEDIUM PRIORITY ITEMS (Sprint 3-4)
--------------------------------------------------------------------------------
%s

LOW PRIORITY ITEMS (Future Sprints)
--------------------------------------------------------------------------------
%s

RISKS & DEPENDENCIES
--------------------------------------------------------------------------------
%s
`,
		r.ProjectName,
		r.ClientName,
		g.date(),
		r.TimelineSuggestion,
		backlogBlock(high, 0),
		backlogBlock(medium, len(high)),
		backlogBlock(low, len(high)+len(medium)),
		strings.Join(risks, "\n"),
	)
}
