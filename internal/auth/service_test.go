package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/co2re/innovation-hub/internal/db"
	"github.com/co2re/innovation-hub/internal/models"
)

type memUsers struct {
	byEmail map[string]models.User
}

func newMemUsers() *memUsers {
	return &memUsers{byEmail: make(map[string]models.User)}
}

func (m *memUsers) CreateUser(_ context.Context, user models.User) error {
	if _, ok := m.byEmail[user.Email]; ok {
		return errors.New("duplicate email")
	}
	m.byEmail[user.Email] = user
	return nil
}

func (m *memUsers) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := m.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, db.ErrNotFound
	}
	copied := user
	return &copied, nil
}

func (m *memUsers) GetUserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, user := range m.byEmail {
		if user.ID == id {
			copied := user
			return &copied, nil
		}
	}
	return nil, db.ErrNotFound
}

func (m *memUsers) UpdateUserProfile(_ context.Context, id uuid.UUID, profile models.MatchProfile) error {
	for email, user := range m.byEmail {
		if user.ID == id {
			user.Profile = profile
			m.byEmail[email] = user
			return nil
		}
	}
	return db.ErrNotFound
}

func TestSignupAndLogin(t *testing.T) {
	svc := NewService(newMemUsers())
	ctx := context.Background()

	res, err := svc.Signup(ctx, SignupRequest{
		Email:    "Founder@Example.org",
		Password: "hunter2hunter2",
		Name:     "Founder",
		Profile:  models.MatchProfile{Stage: "Seed"},
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if res.Token == "" {
		t.Error("expected a token")
	}
	if res.User.Email != "founder@example.org" {
		t.Errorf("email = %q, want lowercased", res.User.Email)
	}
	if res.User.PasswordHash != "" {
		t.Error("password hash leaked in response")
	}

	if _, err := svc.Signup(ctx, SignupRequest{Email: "founder@example.org", Password: "x"}); !errors.Is(err, ErrUserExists) {
		t.Errorf("duplicate signup error = %v, want ErrUserExists", err)
	}

	login, err := svc.Login(ctx, LoginRequest{Email: "founder@example.org", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.User.ID != res.User.ID {
		t.Errorf("login user id = %v, want %v", login.User.ID, res.User.ID)
	}

	if _, err := svc.Login(ctx, LoginRequest{Email: "founder@example.org", Password: "wrong"}); !errors.Is(err, ErrInvalidCreds) {
		t.Errorf("bad password error = %v, want ErrInvalidCreds", err)
	}
	if _, err := svc.Login(ctx, LoginRequest{Email: "nobody@example.org", Password: "x"}); !errors.Is(err, ErrInvalidCreds) {
		t.Errorf("unknown user error = %v, want ErrInvalidCreds", err)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	svc := NewService(newMemUsers())
	ctx := context.Background()

	res, err := svc.Signup(ctx, SignupRequest{Email: "a@b.org", Password: "longenoughpw"})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	profile := models.MatchProfile{
		Stage:                 "Series A",
		FocusAreas:            []string{"Biochar"},
		PreferredFundingTypes: []string{"vc"},
	}
	if err := svc.UpdateProfile(ctx, res.User.ID, profile); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	user, err := svc.GetProfile(ctx, res.User.ID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if user.Profile.Stage != "Series A" || len(user.Profile.FocusAreas) != 1 {
		t.Errorf("profile = %+v", user.Profile)
	}
}
