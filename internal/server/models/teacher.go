package models

// Teacher is an administrator account. PasswordHash is a bcrypt hash.
type Teacher struct {
	Username     string
	PasswordHash []byte
}
