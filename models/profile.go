package models

// Profile is the single owner record rendered in the hero and about sections
// of the public site. The backend keeps exactly one row; GET /profile and
// PUT /profile exchange it as one object.
type Profile struct {
	// Name is the site owner's display name.
	Name string `json:"name"`

	// Title is the professional headline shown under the name.
	Title string `json:"title"`

	// Bio is the long-form about text.
	Bio string `json:"bio"`

	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`

	// GithubURL and LinkedinURL feed the social links in the hero section.
	GithubURL   string `json:"github_url"`
	LinkedinURL string `json:"linkedin_url"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profile"
}
