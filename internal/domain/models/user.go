package models

// User is the signed-in customer as returned by /users/verify-otp.
type User struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Admin is the console operator as returned by /admins/verify-otp.
type Admin struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}
