package common

// Storage keys of the two records kept in the metadata table.
const (
	UsersKey   = "users"
	SessionKey = "user"
)

// MinPasswordLength is counted in characters, not bytes.
const MinPasswordLength = 6
