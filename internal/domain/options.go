package domain

// Category groups subcategories for ticket classification.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Subcategory is the classification a ticket actually references; it belongs
// to exactly one category.
type Subcategory struct {
	ID         string   `json:"id"`
	CategoryID string   `json:"category_id,omitempty"`
	Name       string   `json:"name"`
	Category   Category `json:"category"`
}

// Severity ranks tickets by urgency. Level is an ordering key and is not
// required to be unique.
type Severity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
	Note  string `json:"note"`
}

// SLA is a named response-time commitment. The backend never returns the
// numeric response time, only the descriptive note.
type SLA struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Note string `json:"note"`
}

// StaffMember is a backend staff listing entry, used for assignee selection
// and staff administration.
type StaffMember struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsSysAdmin bool   `json:"is_sys_admin"`
}
