package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Interview is the durable outcome of one completed report request.
type Interview struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	JobRole          string    `gorm:"type:text" json:"job_role"`
	Domain           string    `gorm:"type:text" json:"domain"`
	ResumeText       string    `gorm:"type:text" json:"resume_text"`
	FavoriteLanguage string    `gorm:"type:text" json:"favorite_language"`
	InterviewMode    string    `gorm:"type:text" json:"interview_mode"`
	Responses        string    `gorm:"type:text" json:"responses"`
	Selected         bool      `gorm:"not null;default:false" json:"selected"`
	Feedback         string    `gorm:"type:text" json:"feedback"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Interview) TableName() string {
	return "interviews"
}

func (i *Interview) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
