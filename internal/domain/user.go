package domain

// User is the domain entity for a registered account.
// PasswordHash holds the hex digest of the real password, never the plaintext.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Email        string
}
