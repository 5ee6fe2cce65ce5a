package domain

import "time"

// Priority of a requirement item. Always one of High, Medium or Low.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// NormalizePriority maps unknown or empty priority values to Medium so the
// generators never see anything outside the three literals.
func NormalizePriority(p Priority) Priority {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return p
	}
	return PriorityMedium
}

// RequirementItem is one elicited functional, non-functional or domain need.
type RequirementItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
}

// Requirements is the structured model produced by one extraction call.
// It is immutable after extraction; generators only read it. Order within
// each list is the insertion order from the extraction call and is
// preserved in every generated artifact.
type Requirements struct {
	ProjectName        string            `json:"project_name"`
	ClientName         string            `json:"client_name"`
	Functional         []RequirementItem `json:"functional"`
	NonFunctional      []RequirementItem `json:"non_functional"`
	Domain             []RequirementItem `json:"domain"`
	Risks              []string          `json:"risks"`
	TimelineSuggestion string            `json:"timeline_suggestion"`
	Notes              []string          `json:"notes"`
}

// Message roles within a conversation.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Message is a single turn in an elicitation conversation.
type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Project is a named, timestamped, immutable snapshot of one completed
// elicitation session. Later edits to the live conversation never change
// a saved project.
type Project struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	CreatedAt    time.Time    `json:"created_at"`
	Requirements Requirements `json:"requirements"`
	Messages     []Message    `json:"messages"`
}

// Clone returns a deep copy of the project so a saved snapshot cannot be
// mutated through the live session.
func (p Project) Clone() Project {
	out := p
	out.Requirements = p.Requirements.Clone()
	out.Messages = append([]Message(nil), p.Messages...)
	return out
}

// Clone returns a deep copy of the requirements model.
func (r Requirements) Clone() Requirements {
	out := r
	out.Functional = append([]RequirementItem(nil), r.Functional...)
	out.NonFunctional = append([]RequirementItem(nil), r.NonFunctional...)
	out.Domain = append([]RequirementItem(nil), r.Domain...)
	out.Risks = append([]string(nil), r.Risks...)
	out.Notes = append([]string(nil), r.Notes...)
	return out
}
