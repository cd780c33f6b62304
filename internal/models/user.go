package models

// User is the stored shape of an account row.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don’t expose hash
}

// PublicUser is the outward-facing shape of a user; it carries no
// credential material and is safe to serialize in any response.
type PublicUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// Public converts a stored user into its response shape.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username}
}
