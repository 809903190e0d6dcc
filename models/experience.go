package models

// Experience is one entry of the work-history timeline. Achievements travel
// as an ordered list on the wire; the admin edit form shows them one per line
// and drops blank lines on submit.
type Experience struct {
	ID       int64  `json:"id"`
	Company  string `json:"company"`
	Position string `json:"position"`

	// Period is a free-form range label, e.g. "2020 - 2022".
	Period string `json:"period"`

	Description string `json:"description"`

	// Achievements is the ordered bullet list rendered under the description.
	Achievements []string `json:"achievements"`
}

// TableName returns the name of the database table
// associated with the Experience model.
func (e Experience) TableName() string {
	return "experience"
}
