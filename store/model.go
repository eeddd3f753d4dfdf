package store

// Profile is the denormalized admin identity snapshot cached next to the
// token for display purposes. It is never consulted for authorization.
type Profile struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}
