// Package store wraps all database access behind small interfaces so the
// services above it can be tested against in-memory fakes
package store

import (
	"context"

	"gtnotes/notes-api/model"
)

type UserStore interface {
	// Create inserts a new user. A taken email or google ID yields
	// common.ErrConflict
	Create(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*model.User, error)
}

type NoteStore interface {
	Create(ctx context.Context, n *model.Note) error
	FindByID(ctx context.Context, id string) (*model.Note, error)
	ListByStatus(ctx context.Context, status string) ([]model.Note, error)
	ListByUploader(ctx context.Context, userID string) ([]model.Note, error)

	// SetStatus moves a pending note to the given status and records who
	// moderated it. A note that is absent or no longer pending yields
	// common.ErrNotFound; the two cases are deliberately not
	// distinguishable
	SetStatus(ctx context.Context, noteID, status, approverID string) (*model.Note, error)
}
