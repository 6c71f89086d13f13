package model

import "time"

// User is a single registered account as stored in the user document.
// CreatedAt is set once at registration and marshals as RFC3339 (ISO-8601).
type User struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserDocument is the entire persisted state: one JSON document holding the
// ordered user collection. Ordering is insertion order and carries no
// semantic meaning.
type UserDocument struct {
	Users []User `json:"users"`
}

// NewUserDocument returns an empty document
func NewUserDocument() *UserDocument {
	return &UserDocument{Users: []User{}}
}

// FindUser returns the user with the given username (exact, case-sensitive
// match), or ErrUserNotFound
func (d *UserDocument) FindUser(username string) (*User, error) {
	for i := range d.Users {
		if d.Users[i].Username == username {
			return &d.Users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

// HasUser reports whether a user with the given username exists
func (d *UserDocument) HasUser(username string) bool {
	_, err := d.FindUser(username)
	return err == nil
}

// Append adds a user to the end of the collection
func (d *UserDocument) Append(user User) {
	d.Users = append(d.Users, user)
}
