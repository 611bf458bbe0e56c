package model

// Actor is the caller identity supplied by the session layer. It is trusted as is.
type Actor struct {
	UserID uint64 `json:"user_id"`
	Role   string `json:"role"`
}

// UserRef returns the actor's user id for nullable created_by/user_id columns.
func (a Actor) UserRef() *uint64 {
	if a.UserID == 0 {
		return nil
	}
	id := a.UserID
	return &id
}
