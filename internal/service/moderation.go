package service

import (
	"context"

	"gtnotes/notes-api/internal/store"
	"gtnotes/notes-api/model"
)

// Moderation drives the pending -> approved|rejected note lifecycle.
// Both transitions are terminal; role gating happens in the middleware
// before these are reached
type Moderation struct {
	Notes store.NoteStore
}

func NewModeration(notes store.NoteStore) *Moderation {
	return &Moderation{Notes: notes}
}

// Approve moves a pending note to approved and records the moderator.
// Absent and already-moderated notes both yield common.ErrNotFound
func (m *Moderation) Approve(ctx context.Context, noteID, approverID string) (*model.Note, error) {
	return m.Notes.SetStatus(ctx, noteID, model.StatusApproved, approverID)
}

// Reject moves a pending note to rejected and records the moderator
func (m *Moderation) Reject(ctx context.Context, noteID, approverID string) (*model.Note, error) {
	return m.Notes.SetStatus(ctx, noteID, model.StatusRejected, approverID)
}

// ListPending returns the admin review queue
func (m *Moderation) ListPending(ctx context.Context) ([]model.Note, error) {
	return m.Notes.ListByStatus(ctx, model.StatusPending)
}

// ListApproved returns the publicly browsable notes
func (m *Moderation) ListApproved(ctx context.Context) ([]model.Note, error) {
	return m.Notes.ListByStatus(ctx, model.StatusApproved)
}
