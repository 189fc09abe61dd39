package dto

// ContactRequest represents a contact form submission
type ContactRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Company  string `json:"company,omitempty"`
	Message  string `json:"message"`
}
