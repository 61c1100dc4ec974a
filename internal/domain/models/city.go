package models

// City is a city with its single terminal.
type City struct {
	ID       string `json:"_id,omitempty"`
	Name     string `json:"name"`
	State    string `json:"state,omitempty"`
	Country  string `json:"country,omitempty"`
	Terminal string `json:"terminal"`
}
