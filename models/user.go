package models

// User is an account that can authenticate against the API.
type User struct {
	// UserID is the server-assigned identifier of the account.
	UserID string `json:"user_id,omitempty"`

	// Email doubles as the login name and must be unique.
	Email string `json:"email"`

	// Password carries the plaintext password on register/login requests.
	// It is never stored or echoed back; the server keeps only an HMAC hash.
	Password string `json:"password,omitempty"`

	// PasswordHash is the stored HMAC-SHA256 hash of the password.
	// Never serialized.
	PasswordHash string `json:"-"`

	// Name is the display name of the account holder.
	Name string `json:"name,omitempty"`

	// Role is a free-form role label (e.g. "admin", "staff").
	Role string `json:"role,omitempty"`
}
