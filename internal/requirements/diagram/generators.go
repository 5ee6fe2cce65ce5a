package diagram

import (
	"fmt"
	"strings"

	"github.com/reqmaster-ai/reqmaster-backend/internal/requirements/domain"
)

// Each generator is a pure function of the requirements model and returns
// PlantUML text bounded by @startuml / @enduml. No I/O, no randomness.

// UseCase renders one use-case node per functional requirement, all
// connected to a single User actor.
func UseCase(r domain.Requirements) string {
	lines := []string{"@startuml", "left to right direction", "actor User"}

	for i, req := range r.Functional {
		ucID := fmt.Sprintf("UC%d", i+1)
		title := req.Title
		if title == "" {
			title = fmt.Sprintf("Use Case %d", i+1)
		}
		lines = append(lines,
			fmt.Sprintf("usecase %q as %s", SafeLabel(title), ucID),
			fmt.Sprintf("User --> %s", ucID),
		)
	}

	lines = append(lines, "@enduml")
	return strings.Join(lines, "\n")
}

// Class renders a rough class draft: one class per functional requirement,
// with the description as a single comment line inside the body.
func Class(r domain.Requirements) string {
	lines := []string{"@startuml", "skinparam classAttributeIconSize 0"}

	for i, req := range r.Functional {
		title := req.Title
		if title == "" {
			title = fmt.Sprintf("Feature%d", i+1)
		}
		className := strings.ReplaceAll(SafeLabel(title), " ", "")
		lines = append(lines, fmt.Sprintf("class %s {", className))
		if req.Description != "" {
			lines = append(lines, "  // "+SafeLabel(req.Description))
		}
		lines = append(lines, "}")
	}

	lines = append(lines, "@enduml")
	return strings.Join(lines, "\n")
}

// Sequence renders one labeled interaction block per High-priority
// functional requirement.
func Sequence(r domain.Requirements) string {
	lines := []string{"@startuml", "actor User", "participant System"}

	i := 0
	for _, req := range r.Functional {
		if req.Priority != domain.PriorityHigh {
			continue
		}
		title := req.Title
		if title == "" {
			title = fmt.Sprintf("Scenario %d", i+1)
		}
		desc := req.Description
		if desc == "" {
			desc = "Perform action"
		}
		lines = append(lines,
			fmt.Sprintf("== %s ==", SafeLabel(title)),
			"User -> System : "+SafeLabel(desc),
			"System --> User : Result",
			"",
		)
		i++
	}

	lines = append(lines, "@enduml")
	return strings.Join(lines, "\n")
}

// FlowChart renders the elicited features as a flat sequential activity
// flow in a single User swimlane. No branching is modeled.
func FlowChart(r domain.Requirements) string {
	lines := []string{"@startuml", "|User|", "start"}

	for i, req := range r.Functional {
		title := req.Title
		if title == "" {
			title = fmt.Sprintf("Step %d", i+1)
		}
		lines = append(lines, fmt.Sprintf(": %s;", SafeLabel(title)))
	}

	lines = append(lines, "stop", "@enduml")
	return strings.Join(lines, "\n")
}

// FeatureTree renders a root node labeled by the project name with one
// child edge per functional requirement.
func FeatureTree(r domain.Requirements) string {
	rootName := r.ProjectName
	if rootName == "" {
		rootName = "System"
	}
	root := SafeLabel(rootName)

	lines := []string{"@startuml", fmt.Sprintf("(*) --> %q", root)}
	for _, req := range r.Functional {
		title := req.Title
		if title == "" {
			title = "Feature"
		}
		lines = append(lines, fmt.Sprintf("%q --> %q", root, SafeLabel(title)))
	}

	lines = append(lines, "@enduml")
	return strings.Join(lines, "\n")
}

// Context renders the system node, the User actor and one external node
// per domain requirement. An empty domain list yields two synthesized
// placeholder externals so the diagram is never degenerate.
func Context(r domain.Requirements) string {
	systemName := r.ProjectName
	if systemName == "" {
		systemName = "System"
	}

	lines := []string{
		"@startuml",
		fmt.Sprintf("node %q as System", SafeLabel(systemName)),
		"actor User",
		"User --> System : uses",
	}

	externals := r.Domain
	if len(externals) == 0 {
		externals = []domain.RequirementItem{
			{Title: "External System A"},
			{Title: "External System B"},
		}
	}

	for i, req := range externals {
		title := req.Title
		if title == "" {
			title = fmt.Sprintf("External %d", i+1)
		}
		lines = append(lines,
			fmt.Sprintf("node %q as Ext%d", SafeLabel(title), i+1),
			fmt.Sprintf("System --> Ext%d", i+1),
		)
	}

	lines = append(lines, "@enduml")
	return strings.Join(lines, "\n")
}

// ERD renders one class-shaped entity per domain requirement. Attributes
// are derived by splitting the description on ';' or ',' and trimming;
// fragments are expected to already be label-safe and are not sanitized.
func ERD(r domain.Requirements) string {
	lines := []string{"@startuml", "hide circle"}

	entities := r.Domain
	if len(entities) == 0 {
		entities = []domain.RequirementItem{
			{Title: "Entity", Description: "attribute1, attribute2"},
		}
	}

	for i, req := range entities {
		title := req.Title
		if title == "" {
			title = fmt.Sprintf("Entity%d", i+1)
		}
		name := strings.ReplaceAll(SafeLabel(title), " ", "")
		lines = append(lines, fmt.Sprintf("class %s {", name))
		for _, frag := range strings.FieldsFunc(req.Description, func(r rune) bool {
			return r == ';' || r == ','
		}) {
			attr := strings.TrimSpace(frag)
			if attr == "" {
				continue
			}
			lines = append(lines, "  "+attr)
		}
		lines = append(lines, "}")
	}

	lines = append(lines, "@enduml")
	return strings.Join(lines, "\n")
}
