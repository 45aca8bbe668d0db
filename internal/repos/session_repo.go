package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type SessionRepo struct{ DB *sqlx.DB }

func NewSessionRepo(db *sqlx.DB) *SessionRepo { return &SessionRepo{DB: db} }

// Bind attaches a user to a session token. A second bind on the same
// token overwrites the previous user.
func (r *SessionRepo) Bind(sid, userID string) error {
	_, err := r.DB.Exec(`INSERT INTO sessions(id,user_id,last_seen)
                          VALUES(?,?,CURRENT_TIMESTAMP)
                          ON CONFLICT(id) DO UPDATE SET user_id=excluded.user_id,last_seen=CURRENT_TIMESTAMP`,
		sid, userID)
	return err
}

// UserID returns the user bound to a token, or "" when the token is
// unknown or unbound. Read-only.
func (r *SessionRepo) UserID(sid string) (string, error) {
	var uid sql.NullString
	err := r.DB.Get(&uid, `SELECT user_id FROM sessions WHERE id=?`, sid)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if !uid.Valid {
		return "", nil
	}
	return uid.String, nil
}

func (r *SessionRepo) Unbind(sid string) error {
	_, err := r.DB.Exec(`UPDATE sessions SET user_id=NULL,last_seen=CURRENT_TIMESTAMP WHERE id=?`, sid)
	return err
}
