// Package models holds the client-side records kept in local storage.
package models

// StoredUser is a registered identity as kept in the registry.
// The password is stored as entered; there is no hashing at this layer.
type StoredUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is the logged-in identity: a StoredUser without the password.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SessionUser strips the password.
func (s StoredUser) SessionUser() User {
	return User{Name: s.Name, Email: s.Email}
}
