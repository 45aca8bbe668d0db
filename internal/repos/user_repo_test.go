package repos_test

import (
	"errors"
	"testing"

	"membergate/internal/repos"
)

func memdb(t *testing.T) *repos.UserRepo {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return repos.NewUserRepo(db)
}

func TestCreateAndLookup(t *testing.T) {
	users := memdb(t)

	id, err := users.Create("a@x.com", "$2a$12$fakehash", "Alice")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == "" {
		t.Fatal("empty id")
	}

	u, err := users.ByEmail("a@x.com")
	if err != nil {
		t.Fatalf("by email: %v", err)
	}
	if u.ID != id || u.Name != "Alice" || u.Hash != "$2a$12$fakehash" {
		t.Fatalf("bad record: %+v", u)
	}

	u2, err := users.ByID(id)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if u2.Email != "a@x.com" {
		t.Fatalf("bad record by id: %+v", u2)
	}
}

func TestCreateDuplicateEmail(t *testing.T) {
	users := memdb(t)

	if _, err := users.Create("a@x.com", "h1", "Alice"); err != nil {
		t.Fatal(err)
	}
	_, err := users.Create("a@x.com", "h2", "Impostor")
	if !errors.Is(err, repos.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	var n int
	if err := users.DB.Get(&n, `SELECT COUNT(*) FROM users WHERE email='a@x.com'`); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("expected exactly one record, got %d", n)
	}
}

func TestLookupIsCaseSensitive(t *testing.T) {
	users := memdb(t)

	if _, err := users.Create("Alice@x.com", "h", "Alice"); err != nil {
		t.Fatal(err)
	}
	if _, err := users.ByEmail("alice@x.com"); !errors.Is(err, repos.ErrNotFound) {
		t.Fatalf("lookup folded case: %v", err)
	}
	if _, err := users.ByEmail("Alice@x.com"); err != nil {
		t.Fatalf("exact lookup failed: %v", err)
	}
}

func TestNotFound(t *testing.T) {
	users := memdb(t)

	if _, err := users.ByEmail("ghost@x.com"); !errors.Is(err, repos.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := users.ByID("no-such-id"); !errors.Is(err, repos.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
