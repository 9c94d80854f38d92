package service_test

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/ahmetberacelik/legalcase/internal/database"
	"github.com/ahmetberacelik/legalcase/internal/service"
)

func TestRegisterHashesPassword(t *testing.T) {
	f := newFixture(t)

	user, err := f.auth.Register("ayse", "secret", "ayse@example.com", "Ayse", "Kaya", database.RoleLawyer)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if !user.Enabled {
		t.Error("expected new user to be enabled")
	}
	if user.PasswordHash == "secret" {
		t.Fatal("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
}

func TestRegisterDuplicates(t *testing.T) {
	f := newFixture(t)

	if _, err := f.auth.Register("ayse", "secret", "ayse@example.com", "", "", database.RoleLawyer); err != nil {
		t.Fatal(err)
	}

	_, err := f.auth.Register("ayse", "other", "other@example.com", "", "", database.RoleLawyer)
	if err == nil || !service.IsValidation(err) {
		t.Errorf("expected validation error for duplicate username, got %v", err)
	}

	_, err = f.auth.Register("other", "other", "ayse@example.com", "", "", database.RoleLawyer)
	if err == nil || !service.IsValidation(err) {
		t.Errorf("expected validation error for duplicate email, got %v", err)
	}
}

func TestLoginOutcomes(t *testing.T) {
	f := newFixture(t)
	sess := service.NewSession()

	user, err := f.auth.Register("mehmet", "pw123", "mehmet@example.com", "", "", database.RoleAssistant)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"unknown username", "nobody", "pw123", false},
		{"wrong password", "mehmet", "wrong", false},
		{"valid credentials", "mehmet", "pw123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.auth.Login(sess, tt.username, tt.password)
			if err != nil {
				t.Fatalf("login returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}

	if !sess.IsLoggedIn() {
		t.Error("session should be logged in after success")
	}

	// A disabled account cannot log in
	if _, err := f.auth.SetUserEnabled(user.ID, false); err != nil {
		t.Fatal(err)
	}
	fresh := service.NewSession()
	ok, err := f.auth.Login(fresh, "mehmet", "pw123")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("disabled account must not log in")
	}
}

func TestSessionStateAndRoles(t *testing.T) {
	f := newFixture(t)
	sess := service.NewSession()

	// Nobody logged in: role checks are false, CurrentUser errors
	if f.auth.HasRole(sess, database.RoleAdmin) {
		t.Error("HasRole must be false with no session")
	}
	if f.auth.IsAdmin(sess) {
		t.Error("IsAdmin must be false with no session")
	}
	if _, err := f.auth.CurrentUser(sess); !errors.Is(err, service.ErrNotLoggedIn) {
		t.Errorf("expected ErrNotLoggedIn, got %v", err)
	}

	// Logout with no session is safe
	f.auth.Logout(sess)

	if _, err := f.auth.Register("root", "root", "root@example.com", "", "", database.RoleAdmin); err != nil {
		t.Fatal(err)
	}
	if ok, _ := f.auth.Login(sess, "root", "root"); !ok {
		t.Fatal("login failed")
	}

	if !f.auth.IsAdmin(sess) {
		t.Error("expected admin role")
	}
	if !f.auth.HasRole(sess, database.RoleAdmin) {
		t.Error("expected HasRole(ADMIN) to be true")
	}
	if f.auth.HasRole(sess, database.RoleLawyer) {
		t.Error("expected HasRole(LAWYER) to be false")
	}

	user, err := f.auth.CurrentUser(sess)
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if user.Username != "root" {
		t.Errorf("unexpected current user: %s", user.Username)
	}

	f.auth.Logout(sess)
	if sess.IsLoggedIn() {
		t.Error("session still logged in after logout")
	}
}

func TestResume(t *testing.T) {
	f := newFixture(t)

	user, err := f.auth.Register("web", "pw", "web@example.com", "", "", database.RoleLawyer)
	if err != nil {
		t.Fatal(err)
	}

	sess := service.NewSession()
	ok, err := f.auth.Resume(sess, user.ID)
	if err != nil || !ok {
		t.Fatalf("resume failed: ok=%v err=%v", ok, err)
	}
	if !sess.IsLoggedIn() {
		t.Error("session not bound after resume")
	}

	if _, err := f.auth.SetUserEnabled(user.ID, false); err != nil {
		t.Fatal(err)
	}
	fresh := service.NewSession()
	ok, err = f.auth.Resume(fresh, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("resume must fail for a disabled account")
	}

	ok, err = f.auth.Resume(service.NewSession(), 9999)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("resume must fail for an unknown id")
	}
}
