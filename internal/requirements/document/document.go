package document

import (
	"time"

	"github.com/reqmaster-ai/reqmaster-backend/internal/requirements/domain"
)

// Generator renders requirement documents. The only non-determinism in any
// template is the generation date, so the clock is injectable for tests.
type Generator struct {
	Now func() time.Time
}

// New returns a generator using the wall clock.
func New() *Generator {
	return &Generator{Now: time.Now}
}

func (g *Generator) date() string {
	return g.Now().Format("1/2/2006")
}

// Entry describes one available document template.
type Entry struct {
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Catalog lists every document template in a stable order.
var Catalog = []Entry{
	{Kind: "srs", Name: "SRS (Software Requirements Specification)", Description: "Formal IEEE-style requirements document"},
	{Kind: "agile", Name: "Agile Product Backlog", Description: "Sprint-ready backlog with story points"},
	{Kind: "user-stories", Name: "User Stories", Description: "Detailed user story format with acceptance criteria"},
}

// Render generates the document of the given kind.
func (g *Generator) Render(kind string, r domain.Requirements) (string, bool) {
	switch kind {
	case "srs":
		return g.SRS(r), true
	case "agile":
		return g.AgileBacklog(r), true
	case "user-stories":
		return g.UserStories(r), true
	}
	return "", false
}
