package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/veugravata/backend/internal/models"
)

// memoryUsers is an in-memory UserStorage for authenticator tests.
type memoryUsers struct {
	byEmail map[string]*models.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byEmail: make(map[string]*models.User)}
}

func (m *memoryUsers) CreateUser(_ context.Context, user *models.User) error {
	m.byEmail[user.Email] = user
	return nil
}

func (m *memoryUsers) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	return m.byEmail[email], nil
}

func (m *memoryUsers) GetUserByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()
	authenticator := NewPasswordAuthenticator(newMemoryUsers())

	t.Run("register and authenticate", func(t *testing.T) {
		user, err := authenticator.Register(ctx, "casal@example.com", "Ana & Bruno", "correct-horse")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if user.PasswordHash == "correct-horse" {
			t.Error("password stored in plaintext")
		}
		if user.PartnerNames != "Ana & Bruno" {
			t.Errorf("PartnerNames = %q", user.PartnerNames)
		}

		got, err := authenticator.Authenticate(ctx, "casal@example.com", "correct-horse")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if got.ID != user.ID {
			t.Errorf("authenticated user %s, want %s", got.ID, user.ID)
		}
	})

	t.Run("weak password rejected", func(t *testing.T) {
		if _, err := authenticator.Register(ctx, "x@example.com", "X & Y", "short"); !errors.Is(err, ErrWeakPassword) {
			t.Errorf("Register with weak password = %v, want ErrWeakPassword", err)
		}
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		if _, err := authenticator.Register(ctx, "casal@example.com", "Outro & Casal", "another-pass"); !errors.Is(err, ErrEmailExists) {
			t.Errorf("duplicate Register = %v, want ErrEmailExists", err)
		}
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		if _, err := authenticator.Authenticate(ctx, "casal@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Authenticate with wrong password = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email rejected", func(t *testing.T) {
		if _, err := authenticator.Authenticate(ctx, "ghost@example.com", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Authenticate with unknown email = %v, want ErrInvalidCredentials", err)
		}
	})
}

func TestJWTManager(t *testing.T) {
	manager := NewJWTManager("test-secret-key", time.Hour)
	user := &models.User{ID: "user-1", Email: "casal@example.com"}

	token, err := manager.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "casal@example.com" {
		t.Errorf("claims = %+v", claims)
	}

	t.Run("garbage token rejected", func(t *testing.T) {
		if _, err := manager.Validate("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate(garbage) = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		other := NewJWTManager("different-secret", time.Hour)
		if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate with wrong secret = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("expired token rejected", func(t *testing.T) {
		expired := NewJWTManager("test-secret-key", -time.Minute)
		tok, err := expired.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := manager.Validate(tok); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate(expired) = %v, want ErrInvalidToken", err)
		}
	})
}
