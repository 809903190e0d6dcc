package models

// Feature is one card of the "what I do" section. Icon is a symbolic name
// resolved by the renderer; unknown names fall back to a default glyph.
type Feature struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`

	// OrderIndex fixes the display order of the cards.
	OrderIndex int `json:"order_index"`
}

// TableName returns the name of the database table
// associated with the Feature model.
func (f Feature) TableName() string {
	return "features"
}
