package domain

type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleClient UserRole = "CLIENT"
)

type User struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Name  string   `json:"name"`
	Role  UserRole `json:"role"`
}

// AdminCredentials is the single email/password pair that unlocks the admin console.
type AdminCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

const (
	// GuestID and GuestName label orders placed without a session.
	GuestID   = "guest"
	GuestName = "Visitante"
)
