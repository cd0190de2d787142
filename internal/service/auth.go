// Package service contains the business logic sitting between the HTTP
// handlers and the stores
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gtnotes/notes-api/internal/common"
	"gtnotes/notes-api/internal/store"
	"gtnotes/notes-api/model"
	"gtnotes/notes-api/pkg/security"

	"github.com/google/uuid"
)

// Authenticator handles signup, password login and Google login, and
// mints the session tokens the middleware later verifies
type Authenticator struct {
	Users store.UserStore

	secret []byte
	ttl    time.Duration
}

func NewAuthenticator(users store.UserStore, secret []byte, ttl time.Duration) *Authenticator {
	return &Authenticator{
		Users:  users,
		secret: secret,
		ttl:    ttl,
	}
}

// Register creates a password-based account with the user role and
// returns it together with a fresh session token. A taken email yields
// common.ErrConflict
func (a *Authenticator) Register(ctx context.Context, email, password, firstName, lastName string) (*model.User, string, error) {
	_, err := a.Users.FindByEmail(ctx, email)
	if err == nil {
		return nil, "", common.ErrConflict
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, "", err
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password, %w", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         model.RoleUser,
	}

	if err := a.Users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := a.MakeToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login verifies a password against the stored hash. Unknown emails and
// wrong passwords both come back as common.ErrInvalidCredentials;
// accounts created through Google yield common.ErrPasswordNotSet so the
// frontend can point the user at the right login path
func (a *Authenticator) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := a.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", common.ErrInvalidCredentials
		}

		return nil, "", err
	}

	if user.PasswordHash == "" {
		return nil, "", common.ErrPasswordNotSet
	}

	ok, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, "", fmt.Errorf("failed to verify password, %w", err)
	}

	if !ok {
		return nil, "", common.ErrInvalidCredentials
	}

	token, err := a.MakeToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// FederatedLogin maps a Google subject ID to a local user, creating one
// on first login. Created accounts have no password hash
func (a *Authenticator) FederatedLogin(ctx context.Context, profile *GoogleProfile) (*model.User, string, error) {
	user, err := a.Users.FindByGoogleID(ctx, profile.Subject)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			return nil, "", err
		}

		user = &model.User{
			ID:        uuid.NewString(),
			Email:     profile.Email,
			GoogleID:  &profile.Subject,
			FirstName: profile.GivenName,
			LastName:  profile.FamilyName,
			Role:      model.RoleUser,
		}

		if err := a.Users.Create(ctx, user); err != nil {
			return nil, "", err
		}
	}

	token, err := a.MakeToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (a *Authenticator) MakeToken(user *model.User) (string, error) {
	token, err := security.MakeToken(user.ID, user.Role, a.secret, a.ttl)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token, %w", err)
	}

	return token, nil
}
