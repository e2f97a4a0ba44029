package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/dto"
	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// UpsertUser creates the user for req.Sub or updates the fields present in
// req, then returns the user with its completed entries, newest first.
func (s *UserService) UpsertUser(ctx context.Context, req *dto.UpsertUserRequest) (*models.User, []models.Completed, error) {
	sub := strings.TrimSpace(req.Sub)
	if sub == "" {
		return nil, nil, ErrSubRequired
	}

	user := models.User{ID: uuid.New(), Sub: sub}
	updates := []string{"updated_at"}
	assign := func(column string, dst *string, src *string) {
		if src != nil {
			*dst = *src
			updates = append(updates, column)
		}
	}
	assign("name", &user.Name, req.Name)
	assign("email", &user.Email, req.Email)
	assign("nickname", &user.Nickname, req.Nickname)
	assign("picture", &user.Picture, req.Picture)

	if len(req.Extra) > 0 {
		profile, err := json.Marshal(req.Extra)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode profile: %w", err)
		}
		user.Profile = datatypes.JSON(profile)
		updates = append(updates, "profile")
	}

	db := s.db.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "sub"}},
		DoUpdates: clause.AssignmentColumns(updates),
	}).Create(&user).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	var stored models.User
	if err := db.First(&stored, "sub = ?", sub).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to reload user: %w", err)
	}

	completed, err := listCompleted(db, sub)
	if err != nil {
		return nil, nil, err
	}
	return &stored, completed, nil
}

// GetUserWithCompleted loads a user with its completed entries and their tasks.
func (s *UserService) GetUserWithCompleted(ctx context.Context, sub string) (*models.User, error) {
	sub = strings.TrimSpace(sub)
	if sub == "" {
		return nil, ErrSubRequired
	}

	var user models.User
	err := s.db.WithContext(ctx).
		Preload("Completed", func(db *gorm.DB) *gorm.DB { return db.Order("date DESC") }).
		Preload("Completed.Tasks", tasksInOrder).
		First(&user, "sub = ?", sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user.Completed == nil {
		user.Completed = []models.Completed{}
	}
	return &user, nil
}
