package service

import (
	"context"
	"time"

	"gtnotes/notes-api/internal/common"
	"gtnotes/notes-api/model"
)

// In-memory stand-ins for the GORM stores. Not safe for concurrent use,
// which the tests don't need

type memUserStore struct {
	users []*model.User
}

func (s *memUserStore) Create(_ context.Context, u *model.User) error {
	for _, ex := range s.users {
		if ex.Email == u.Email {
			return common.ErrConflict
		}
		if ex.GoogleID != nil && u.GoogleID != nil && *ex.GoogleID == *u.GoogleID {
			return common.ErrConflict
		}
	}

	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	s.users = append(s.users, u)
	return nil
}

func (s *memUserStore) FindByID(_ context.Context, id string) (*model.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (s *memUserStore) FindByGoogleID(_ context.Context, googleID string) (*model.User, error) {
	for _, u := range s.users {
		if u.GoogleID != nil && *u.GoogleID == googleID {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}

type memNoteStore struct {
	notes []*model.Note
}

func (s *memNoteStore) Create(_ context.Context, n *model.Note) error {
	n.CreatedAt = time.Now()
	n.UpdatedAt = n.CreatedAt
	s.notes = append(s.notes, n)
	return nil
}

func (s *memNoteStore) FindByID(_ context.Context, id string) (*model.Note, error) {
	for _, n := range s.notes {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, common.ErrNotFound
}

func (s *memNoteStore) ListByStatus(_ context.Context, status string) ([]model.Note, error) {
	var out []model.Note
	for _, n := range s.notes {
		if n.Status == status {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (s *memNoteStore) ListByUploader(_ context.Context, userID string) ([]model.Note, error) {
	var out []model.Note
	for _, n := range s.notes {
		if n.UploadedBy == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (s *memNoteStore) SetStatus(_ context.Context, noteID, status, approverID string) (*model.Note, error) {
	for _, n := range s.notes {
		if n.ID == noteID && n.Status == model.StatusPending {
			n.Status = status
			n.ApprovedBy = &approverID
			n.UpdatedAt = time.Now()
			return n, nil
		}
	}
	return nil, common.ErrNotFound
}
