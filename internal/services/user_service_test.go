package services_test

import (
	"errors"
	"testing"
	"time"

	"userbase/internal/domain"
	"userbase/internal/repos"
	"userbase/internal/services"
)

func newUserService(t *testing.T) *services.UserService {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return &services.UserService{Users: repos.NewUserRepo(db)}
}

func TestCreateGetRoundTrip(t *testing.T) {
	svc := newUserService(t)
	created, err := svc.Create("Carol", "carol@example.com", "Secr3t!")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Hash != "" {
		t.Fatal("create returned password hash")
	}
	if created.UpdatedAt != created.CreatedAt {
		t.Fatalf("fresh user: updatedAt %q != createdAt %q", created.UpdatedAt, created.CreatedAt)
	}

	got, err := svc.GetByID(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Carol" || got.Email != "carol@example.com" || got.CreatedAt != created.CreatedAt {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.Hash != "" {
		t.Fatal("get returned password hash")
	}
}

func TestGetMissing(t *testing.T) {
	svc := newUserService(t)
	if _, err := svc.GetByID("nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestUpdateNameOnly(t *testing.T) {
	svc := newUserService(t)
	created, err := svc.Create("Carol", "carol@example.com", "Secr3t!")
	if err != nil {
		t.Fatal(err)
	}

	time.Sleep(2 * time.Millisecond)
	name := "X"
	upd, err := svc.Update(created.ID, services.UserUpdate{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if upd.Name != "X" {
		t.Fatalf("name = %q, want X", upd.Name)
	}
	if upd.Email != created.Email || upd.CreatedAt != created.CreatedAt {
		t.Fatalf("email/createdAt changed: %+v", upd)
	}
	before, _ := time.Parse(time.RFC3339Nano, created.UpdatedAt)
	after, _ := time.Parse(time.RFC3339Nano, upd.UpdatedAt)
	if !after.After(before) {
		t.Fatalf("updatedAt not advanced: %q -> %q", created.UpdatedAt, upd.UpdatedAt)
	}
}

func TestUpdatePasswordRehashes(t *testing.T) {
	svc := newUserService(t)
	created, err := svc.Create("Carol", "carol@example.com", "Secr3t!")
	if err != nil {
		t.Fatal(err)
	}

	pw := "N3wPass!"
	if _, err := svc.Update(created.ID, services.UserUpdate{Password: &pw}); err != nil {
		t.Fatalf("update: %v", err)
	}
	stored, err := svc.Users.ByID(created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Hash == pw {
		t.Fatal("password stored in plaintext")
	}
	if !stored.CheckPassword("N3wPass!") {
		t.Fatal("new password does not verify")
	}
	if stored.CheckPassword("Secr3t!") {
		t.Fatal("old password still verifies")
	}
}

func TestUpdateMissingUser(t *testing.T) {
	svc := newUserService(t)
	name := "X"
	if _, err := svc.Update("nope", services.UserUpdate{Name: &name}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	svc := newUserService(t)
	created, err := svc.Create("Carol", "carol@example.com", "Secr3t!")
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Remove(created.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.Remove(created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound on second remove, got %v", err)
	}
}

func TestListAllSanitized(t *testing.T) {
	svc := newUserService(t)
	if _, err := svc.Create("Carol", "carol@example.com", "Secr3t!"); err != nil {
		t.Fatal(err)
	}
	users, err := svc.ListAll()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) == 0 {
		t.Fatal("no users listed")
	}
	for _, u := range users {
		if u.Hash != "" {
			t.Fatalf("hash leaked for %s", u.Email)
		}
	}
}

func TestCreateDuplicateEmailRejectedByStore(t *testing.T) {
	svc := newUserService(t)
	if _, err := svc.Create("Carol", "dup@example.com", "Secr3t!"); err != nil {
		t.Fatal(err)
	}
	// No application-level pre-check here: the store's UNIQUE column decides.
	if _, err := svc.Create("Other", "dup@example.com", "0ther!pw"); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
}
