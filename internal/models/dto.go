package models

import "time"

// InterviewRequest carries the interview context sent by the frontend for
// both question and report requests.
type InterviewRequest struct {
	JobRole          string            `json:"jobRole"`
	Domain           string            `json:"domain"`
	Resume           string            `json:"resume"`
	Round            string            `json:"round"`
	FavoriteLanguage string            `json:"favoriteLanguage"`
	InterviewMode    string            `json:"interviewMode"`
	Responses        map[string]string `json:"responses"`
}

type ResumeResponse struct {
	ResumeText string `json:"resumeText"`
}

type QuestionResponse struct {
	Question string `json:"question"`
}

type ReportResponse struct {
	Selected bool   `json:"selected"`
	Feedback string `json:"feedback"`
}

type InterviewResultResponse struct {
	ID               string            `json:"id"`
	JobRole          string            `json:"jobRole"`
	Domain           string            `json:"domain"`
	FavoriteLanguage string            `json:"favoriteLanguage"`
	InterviewMode    string            `json:"interviewMode"`
	Responses        map[string]string `json:"responses,omitempty"`
	Selected         bool              `json:"selected"`
	Feedback         string            `json:"feedback"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}
