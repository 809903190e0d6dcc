package models

// Skill is one item of the tech-stack section.
type Skill struct {
	ID int64 `json:"id"`

	// Category is the grouping key ("Languages", "Backend", ...). The list
	// endpoint returns skills already grouped by it.
	Category string `json:"category"`

	Name string `json:"name"`

	// Level is the proficiency bar value, 1-100.
	Level int `json:"level"`

	IconURL string `json:"icon_url"`

	// Color is the accent hex code used for the proficiency bar.
	Color string `json:"color"`
}

// SkillsByCategory is the shape of GET /skills: category name to the ordered
// skills inside it.
type SkillsByCategory map[string][]Skill

// TableName returns the name of the database table
// associated with the Skill model.
func (s Skill) TableName() string {
	return "skills"
}
