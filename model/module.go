package model

type ResourceType string

const (
	ResourceVideo   ResourceType = "video"
	ResourceArticle ResourceType = "article"
	ResourceCourse  ResourceType = "course"
	ResourceBook    ResourceType = "book"
	ResourceProject ResourceType = "project"
)

// Resource is a fixed piece of module content, never mutated at runtime.
type Resource struct {
	Title string       `json:"title"`
	URL   string       `json:"url"`
	Type  ResourceType `json:"type"`
}

// Module is one week of the curriculum. The set of modules is seeded once;
// only Progress and the derived Completed flag change afterwards.
type Module struct {
	ModuleID       string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	WeekNumber     int        `json:"week_number"`
	Topics         []string   `json:"topics"`
	Resources      []Resource `json:"resources"`
	EstimatedHours float64    `json:"estimated_hours"`
	Completed      bool       `json:"completed"`
	Progress       int        `json:"progress"`
}
