package models

// UserProfile holds the contact details captured on first checkout and
// reused for subsequent orders. Cleared on sign-out.
type UserProfile struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// Credentials is the sign-in / sign-up payload. The simulated auth flow
// never validates or stores them; they only gate the request at the edge.
type Credentials struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
