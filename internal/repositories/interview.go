package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/ai-interviewer/internal/models"
)

var ErrInterviewNotFound = errors.New("interview not found")

type InterviewRepository interface {
	Create(ctx context.Context, interview *models.Interview) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Interview, error)
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

// Create inserts a single row; a failed insert leaves nothing behind.
func (r *interviewRepository) Create(ctx context.Context, interview *models.Interview) error {
	if err := r.db.WithContext(ctx).Create(interview).Error; err != nil {
		return fmt.Errorf("failed to create interview: %w", err)
	}
	return nil
}

func (r *interviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Interview, error) {
	var interview models.Interview
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&interview).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, fmt.Errorf("failed to find interview: %w", err)
	}
	return &interview, nil
}
