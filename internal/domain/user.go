package domain

type User struct {
	ID    string `db:"id"`
	Email string `db:"email"`
	Name  string `db:"name"`
	Hash  string `db:"password_hash"`
}

// Identity is the resolved caller of a request: Anonymous, or
// Authenticated with a user id. Handlers receive it explicitly instead
// of consulting an ambient "current user".
type Identity struct {
	UserID string
}

var Anonymous = Identity{}

func Authenticated(userID string) Identity { return Identity{UserID: userID} }

func (i Identity) IsAuthenticated() bool { return i.UserID != "" }
