package position

// Position is one entry of the position catalog. Identifiers are unique
// within a catalog; both skill maps go from skill identifier to the
// level (1-5) the position asks for.
type Position struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Department      string         `json:"department"`
	Level           string         `json:"level"`
	RequiredSkills  map[string]int `json:"required_skills"`
	PreferredSkills map[string]int `json:"preferred_skills"`
	Description     string         `json:"description,omitempty"`
	IsOpen          bool           `json:"is_open"`
	Location        string         `json:"location,omitempty"`
	PostedDate      string         `json:"posted_date,omitempty"`
}
