package diagram

import "github.com/reqmaster-ai/reqmaster-backend/internal/requirements/domain"

// Generator maps a requirements model to PlantUML text.
type Generator func(domain.Requirements) string

// Entry describes one available diagram kind.
type Entry struct {
	Kind        string    `json:"kind"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Generate    Generator `json:"-"`
}

// Catalog lists every diagram generator in a stable order.
var Catalog = []Entry{
	{Kind: "use-case", Name: "Use Case Diagram", Description: "UML use case diagram based on functional requirements", Generate: UseCase},
	{Kind: "class", Name: "Class Diagram", Description: "Rough classes inferred from features", Generate: Class},
	{Kind: "sequence", Name: "Sequence Diagram", Description: "High-level interaction flows for key scenarios", Generate: Sequence},
	{Kind: "flow-chart", Name: "Flow Chart (Activity)", Description: "Activity diagram using main steps", Generate: FlowChart},
	{Kind: "feature-tree", Name: "Feature Tree", Description: "Tree of features from requirements", Generate: FeatureTree},
	{Kind: "context", Name: "Context Diagram", Description: "System and external entities", Generate: Context},
	{Kind: "erd", Name: "ERD Diagram", Description: "Entity draft from domain requirements", Generate: ERD},
}

// Lookup returns the entry for the given kind.
func Lookup(kind string) (Entry, bool) {
	for _, e := range Catalog {
		if e.Kind == kind {
			return e, true
		}
	}
	return Entry{}, false
}
