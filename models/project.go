package models

// Project is one portfolio entry. Technologies travel as an ordered list on
// the wire; the admin edit form flattens them to comma-separated text and
// splits them back on submit.
type Project struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// Emoji is a single decorative character shown on the project card.
	Emoji string `json:"emoji"`

	GithubURL string `json:"github_url"`
	DemoURL   string `json:"demo_url"`

	// Featured marks projects surfaced on the landing page.
	Featured bool `json:"featured"`

	// Technologies is the ordered tech-stack list for the project card badges.
	Technologies []string `json:"technologies"`
}

// TableName returns the name of the database table
// associated with the Project model.
func (p Project) TableName() string {
	return "projects"
}
