package model

// User is referenced read-only by this service; its lifecycle is managed
// elsewhere. It carries no soft-delete flag, so repository deletes fall
// back to physical removal.
type User struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

func (u *User) EntityID() int64      { return u.ID }
func (u *User) SetEntityID(id int64) { u.ID = id }

var _ Entity = (*User)(nil)
