package services

import (
	"fmt"

	"alfredoptarigan/ai-interviewer/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildQuestionPrompt creates the prompt for a single interview question.
func (pb *PromptBuilder) BuildQuestionPrompt(req *models.InterviewRequest) string {
	focus := ""
	if req.FavoriteLanguage != "" {
		focus = "Focus on " + req.FavoriteLanguage
	}

	return fmt.Sprintf(
		"You are a female interviewer. Generate a %s question for a %s interview for a %s role in the %s domain. Consider the resume: %s. %s",
		req.Round, req.InterviewMode, req.JobRole, req.Domain, req.Resume, focus,
	)
}

// BuildReportPrompt creates the prompt that asks for a verdict and feedback.
func (pb *PromptBuilder) BuildReportPrompt(req *models.InterviewRequest, responsesJSON string) string {
	return fmt.Sprintf(
		"You are a female interviewer. Evaluate the candidate for a %s role in the %s domain based on their resume: %s, responses: %s, and favorite language: %s. Provide a selection status (true/false) and detailed feedback.",
		req.JobRole, req.Domain, req.Resume, responsesJSON, req.FavoriteLanguage,
	)
}
