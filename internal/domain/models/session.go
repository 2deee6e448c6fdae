package models

// User is the identity record returned by the backend at login.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsAdmin reports whether the user may see catalog mutation controls. This
// only gates the UI; the backend enforces authorization on every mutation.
func (u User) IsAdmin() bool {
	return u.Role == "admin"
}

// Session binds a dashboard cookie to the logged-in identity and the bearer
// token the API client attaches to backend requests.
type Session struct {
	ID    string `json:"id" bson:"_id"`
	User  User   `json:"user" bson:"user"`
	Token string `json:"-" bson:"token"`
}
