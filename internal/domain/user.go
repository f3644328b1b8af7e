package domain

// User is the record served at GET /user. Identifiers are opaque strings;
// nothing here assumes a numeric or UUID format.
type User struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Teams [2]string `json:"teams"`
}
