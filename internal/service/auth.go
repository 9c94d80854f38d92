package service

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ahmetberacelik/legalcase/internal/database"
	"github.com/ahmetberacelik/legalcase/internal/repository"
)

// Session holds the logged-in user for one presentation surface. Each
// surface owns its Session and passes it into every AuthService call; no
// process-global login state exists.
type Session struct {
	user *database.User
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) IsLoggedIn() bool {
	return s.user != nil
}

func (s *Session) clear() {
	s.user = nil
}

// AuthService handles registration, login and role checks.
type AuthService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates a new enabled user account. Usernames and emails must be
// unique; the password is stored as a bcrypt hash.
func (s *AuthService) Register(username, password, email, name, surname string, role database.UserRole) (*database.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" {
		return nil, validationf("username must not be empty")
	}
	if password == "" {
		return nil, validationf("password must not be empty")
	}
	if email == "" {
		return nil, validationf("email must not be empty")
	}
	if !role.Valid() {
		return nil, validationf("unknown role %q", role)
	}

	existing, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, storage(err)
	}
	if existing != nil {
		return nil, validationf("username %q is already taken", username)
	}

	existing, err = s.users.FindByEmail(email)
	if err != nil {
		return nil, storage(err)
	}
	if existing != nil {
		return nil, validationf("email %q is already registered", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, storage(err)
	}

	user := &database.User{
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		Name:         name,
		Surname:      surname,
		Role:         role,
		Enabled:      true,
	}

	if err := s.users.Create(user); err != nil {
		return nil, storage(err)
	}
	return user, nil
}

// Login verifies the credentials and binds the user to the session. It
// returns false, not an error, for an unknown username, a wrong password or
// a disabled account.
func (s *AuthService) Login(sess *Session, username, password string) (bool, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		return false, storage(err)
	}
	if user == nil || !user.Enabled {
		return false, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return false, nil
	}

	sess.user = user
	return true, nil
}

// Resume rebinds a session to a previously authenticated user id, as the
// web surface does when it restores a login from a cookie. It returns false
// when the user no longer exists or has been disabled.
func (s *AuthService) Resume(sess *Session, userID uint) (bool, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return false, storage(err)
	}
	if user == nil || !user.Enabled {
		return false, nil
	}

	sess.user = user
	return true, nil
}

// Logout clears the session. Safe to call when nobody is logged in.
func (s *AuthService) Logout(sess *Session) {
	sess.clear()
}

// CurrentUser returns the logged-in user, or ErrNotLoggedIn.
func (s *AuthService) CurrentUser(sess *Session) (*database.User, error) {
	if sess.user == nil {
		return nil, ErrNotLoggedIn
	}
	return sess.user, nil
}

// HasRole reports whether the logged-in user has the given role. It returns
// false when nobody is logged in, the same convention IsAdmin follows.
func (s *AuthService) HasRole(sess *Session, role database.UserRole) bool {
	return sess.user != nil && sess.user.Role == role
}

func (s *AuthService) IsAdmin(sess *Session) bool {
	return s.HasRole(sess, database.RoleAdmin)
}

// SetUserEnabled enables or disables an account. Accounts are never hard
// deleted; disabling blocks further logins.
func (s *AuthService) SetUserEnabled(id uint, enabled bool) (*database.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, storage(err)
	}
	if user == nil {
		return nil, validationf("user with id %d does not exist", id)
	}

	user.Enabled = enabled
	if err := s.users.Update(user); err != nil {
		return nil, storage(err)
	}
	return user, nil
}

func (s *AuthService) ListUsers() ([]database.User, error) {
	users, err := s.users.FindAll()
	if err != nil {
		return nil, storage(err)
	}
	return users, nil
}
