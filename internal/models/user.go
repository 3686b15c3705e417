package models

// User is an account member on the host platform
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	IsAdmin    bool   `json:"is_admin,omitempty"`
	IsGuest    bool   `json:"is_guest,omitempty"`
	PhotoThumb string `json:"photo_thumb,omitempty"`
}

// Team is a named group of users
type Team struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Users []User `json:"users,omitempty"`
}

// ViewerProfile holds the viewer attributes visibility rules are evaluated against
type ViewerProfile struct {
	Title   string `json:"title"`
	Profile string `json:"profile"`
	Role    string `json:"role"`
}

// Attribute returns the profile attribute a rule field refers to
func (p ViewerProfile) Attribute(field RuleField) (string, bool) {
	switch field {
	case RuleFieldTitle:
		return p.Title, true
	case RuleFieldProfile:
		return p.Profile, true
	case RuleFieldRole:
		return p.Role, true
	default:
		return "", false
	}
}
