package domain

type User struct {
	ID     string
	Name   string
	Email  string
	Avatar string
}

// Credentials pairs a registry user with its plaintext password. The password
// never leaves the credential store: lookups return only the User.
type Credentials struct {
	User     User
	Password string
}
