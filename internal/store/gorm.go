package store

import (
	"context"
	"errors"
	"fmt"

	"gtnotes/notes-api/internal/common"
	"gtnotes/notes-api/model"

	"gorm.io/gorm"
)

type GormUserStore struct {
	DB *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{DB: db}
}

func (s *GormUserStore) Create(ctx context.Context, u *model.User) error {
	err := s.DB.WithContext(ctx).Create(u).Error
	if err != nil {
		// Concurrent duplicate signups race past the handler's existence
		// check and land here on the unique index instead
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return common.ErrConflict
		}

		return fmt.Errorf("failed to create user, %w", err)
	}

	return nil
}

func (s *GormUserStore) FindByID(ctx context.Context, id string) (*model.User, error) {
	return s.findOne(ctx, "id = ?", id)
}

func (s *GormUserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.findOne(ctx, "email = ?", email)
}

func (s *GormUserStore) FindByGoogleID(ctx context.Context, googleID string) (*model.User, error) {
	return s.findOne(ctx, "google_id = ?", googleID)
}

func (s *GormUserStore) findOne(ctx context.Context, query string, arg any) (*model.User, error) {
	var user model.User

	err := s.DB.WithContext(ctx).Where(query, arg).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}

		return nil, fmt.Errorf("failed to fetch user, %w", err)
	}

	return &user, nil
}

type GormNoteStore struct {
	DB *gorm.DB
}

func NewGormNoteStore(db *gorm.DB) *GormNoteStore {
	return &GormNoteStore{DB: db}
}

func (s *GormNoteStore) Create(ctx context.Context, n *model.Note) error {
	if err := s.DB.WithContext(ctx).Create(n).Error; err != nil {
		return fmt.Errorf("failed to create note, %w", err)
	}

	return nil
}

func (s *GormNoteStore) FindByID(ctx context.Context, id string) (*model.Note, error) {
	var note model.Note

	err := s.DB.WithContext(ctx).Where("id = ?", id).First(&note).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}

		return nil, fmt.Errorf("failed to fetch note, %w", err)
	}

	return &note, nil
}

func (s *GormNoteStore) ListByStatus(ctx context.Context, status string) ([]model.Note, error) {
	var notes []model.Note

	err := s.DB.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&notes).
		Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notes, %w", err)
	}

	return notes, nil
}

func (s *GormNoteStore) ListByUploader(ctx context.Context, userID string) ([]model.Note, error) {
	var notes []model.Note

	err := s.DB.WithContext(ctx).
		Where("uploaded_by = ?", userID).
		Order("created_at DESC").
		Find(&notes).
		Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notes, %w", err)
	}

	return notes, nil
}

func (s *GormNoteStore) SetStatus(ctx context.Context, noteID, status, approverID string) (*model.Note, error) {
	// Conditional update keeps the transition one-directional without
	// application-level locking
	r := s.DB.WithContext(ctx).
		Model(model.Note{}).
		Where("id = ? AND status = ?", noteID, model.StatusPending).
		Updates(map[string]any{
			"status":      status,
			"approved_by": approverID,
		})
	if r.Error != nil {
		return nil, fmt.Errorf("failed to update note status, %w", r.Error)
	}

	if r.RowsAffected == 0 {
		return nil, common.ErrNotFound
	}

	return s.FindByID(ctx, noteID)
}
