package document

import (
	"fmt"
	"strings"

	"github.com/reqmaster-ai/reqmaster-backend/internal/requirements/domain"
)

// Non-functional stories use a lighter point scale than the other blocks.
func technicalPoints(p domain.Priority) int {
	switch p {
	case domain.PriorityHigh:
		return 5
	case domain.PriorityMedium:
		return 3
	default:
		return 2
	}
}

// UserStories renders three narrative blocks (functional, technical,
// domain). Story numbering is cumulative across the blocks in that order.
func (g *Generator) UserStories(r domain.Requirements) string {
	functional := make([]string, 0, len(r.Functional))
	for i, req := range r.Functional {
		functional = append(functional, fmt.Sprintf(`
Story #%d: %s
Priority: %s

As a user,
I want to %s
So that I can accomplish my goals effectively.

Acceptance Criteria:
- The system shall %s
- The feature must be %s priority
- Testing should verify all edge cases

Story Points: %d
`, i+1, req.Title, req.Priority, strings.ToLower(req.Description), req.Description, strings.ToLower(string(req.Priority)), storyPoints(req.Priority)))
	}

	technical := make([]string, 0, len(r.NonFunctional))
	for i, req := range r.NonFunctional {
		technical = append(technical, fmt.Sprintf(`
Story #%d: %s
Priority: %s

As a system,
I need to %s
So that the application meets quality standards.

Acceptance Criteria:
- %s
- Performance metrics must be defined
- Monitoring and logging should be in place

Story Points: %d
`, len(r.Functional)+i+1, req.Title, req.Priority, strings.ToLower(req.Description), req.Description, technicalPoints(req.Priority)))
	}

	domainStories := make([]string, 0, len(r.Domain))
	for i, req := range r.Domain {
		domainStories = append(domainStories, fmt.Sprintf(`
Story #%d: %s
Priority: %s

As a stakeholder,
I need %s
So that domain-specific requirements are satisfied.

Acceptance Criteria:
- %s
- Domain expert validation required
- Compliance with industry standards

Story Points: %d
`, len(r.Functional)+len(r.NonFunctional)+i+1, req.Title, req.Priority, strings.ToLower(req.Description), req.Description, storyPoints(req.Priority)))
	}

	risks := make([]string, 0, len(r.Risks))
	for i, risk := range r.Risks {
		risks = append(risks, fmt.Sprintf("%d. %s", i+1, risk))
	}

	return fmt.Sprintf(`USER STORIES DOCUMENT
================================================================================
Project: %s
Client: %s
Generated: %s

FUNCTIONAL USER STORIES
--------------------------------------------------------------------------------
%s

TECHNICAL USER STORIES (Non-Functional)
--------------------------------------------------------------------------------
%s

DOMAIN-SPECIFIC STORIES
--------------------------------------------------------------------------------
%s

TIMELINE & RISKS
--------------------------------------------------------------------------------
Estimated Timeline: %s

Key Risks:
%s
`,
		r.ProjectName,
		r.ClientName,
		g.date(),
		strings.Join(functional, "\n"),
		strings.Join(technical, "\n"),
		strings.Join(domainStories, "\n"),
		r.TimelineSuggestion,
		strings.Join(risks, "\n"),
	)
}
