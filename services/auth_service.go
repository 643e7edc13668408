package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/voleidocaos/caos-server/models"
)

// AuthService checks logins against the fixed two-account roster: one
// admin and one shared player account for the regulars.
type AuthService interface {
	Login(ctx context.Context, input models.Credentials) (*models.User, error)
}

type authService struct {
	users []models.User
}

// NewAuthService hashes the configured passwords once at startup and keeps
// the roster in memory; there is no user table.
func NewAuthService(adminPassword, playerPassword string) (AuthService, error) {
	roster := []struct {
		username string
		name     string
		role     models.UserRole
		password string
	}{
		{"admin", "Administrador", models.RoleAdmin, adminPassword},
		{"jogador", "Jogador", models.RolePlayer, playerPassword},
	}

	users := make([]models.User, 0, len(roster))
	for _, entry := range roster {
		hash, err := bcrypt.GenerateFromPassword([]byte(entry.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %s: %w", entry.username, err)
		}
		users = append(users, models.User{
			Username:     entry.username,
			Name:         entry.name,
			Role:         entry.role,
			PasswordHash: string(hash),
		})
	}

	return &authService{users: users}, nil
}

func (s *authService) Login(_ context.Context, input models.Credentials) (*models.User, error) {
	for _, user := range s.users {
		if user.Username != input.Username {
			continue
		}
		err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password))
		if err != nil {
			if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
				return nil, ErrAuthInvalidCredentials
			}
			return nil, fmt.Errorf("failed to compare password hash: %w", err)
		}

		out := user
		out.PasswordHash = ""
		return &out, nil
	}
	return nil, ErrAuthInvalidCredentials
}
