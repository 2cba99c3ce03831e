package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"alfredoptarigan/ai-interviewer/internal/metrics"
	"alfredoptarigan/ai-interviewer/internal/models"
	"alfredoptarigan/ai-interviewer/internal/repositories"
)

// selectedMarker is the verdict token looked for in a generated report.
// The match is a case-sensitive substring test.
const selectedMarker = "Selected"

type InterviewService interface {
	ResolveQuestion(ctx context.Context, req *models.InterviewRequest) (string, error)
	GenerateReport(ctx context.Context, req *models.InterviewRequest) (*models.ReportResponse, error)
}

type interviewService struct {
	model         LanguageModel
	cache         QuestionCache
	interviewRepo repositories.InterviewRepository
	promptBuilder *PromptBuilder
	metrics       *metrics.Metrics
	now           func() time.Time
}

func NewInterviewService(
	model LanguageModel,
	cache QuestionCache,
	interviewRepo repositories.InterviewRepository,
	m *metrics.Metrics,
) InterviewService {
	return &interviewService{
		model:         model,
		cache:         cache,
		interviewRepo: interviewRepo,
		promptBuilder: NewPromptBuilder(),
		metrics:       m,
		now:           time.Now,
	}
}

// QuestionCacheKey derives the cache key for a question. Only role, domain
// and round take part; résumé and language focus are ignored.
func QuestionCacheKey(req *models.InterviewRequest) string {
	return fmt.Sprintf("interview:%s:%s:%s", req.JobRole, req.Domain, req.Round)
}

// ResolveQuestion returns the cached question for the request's role, domain
// and round, generating and caching one on a miss.
func (s *interviewService) ResolveQuestion(ctx context.Context, req *models.InterviewRequest) (string, error) {
	key := QuestionCacheKey(req)

	cached, found, err := s.cache.Get(ctx, key)
	if err != nil {
		s.metrics.CacheError()
		return "", fmt.Errorf("failed to look up cached question: %w", err)
	}
	if found {
		s.metrics.CacheHit()
		return cached, nil
	}
	s.metrics.CacheMiss()

	prompt := s.promptBuilder.BuildQuestionPrompt(req)
	log.Printf("🤖 Generating question for %s\n", key)

	question, err := s.model.Complete(ctx, prompt)
	s.metrics.ModelCall("question", err)
	if err != nil {
		return "", fmt.Errorf("failed to generate question: %w", err)
	}

	if err := s.cache.Set(ctx, key, question); err != nil {
		return "", fmt.Errorf("failed to cache question: %w", err)
	}

	return question, nil
}

// GenerateReport evaluates the collected responses, persists the outcome and
// returns it. Nothing is retained if persisting fails.
func (s *interviewService) GenerateReport(ctx context.Context, req *models.InterviewRequest) (*models.ReportResponse, error) {
	responsesJSON, err := json.Marshal(req.Responses)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize responses: %w", err)
	}

	prompt := s.promptBuilder.BuildReportPrompt(req, string(responsesJSON))
	log.Printf("📝 Report prompt length: %d characters", len(prompt))

	report, err := s.model.Complete(ctx, prompt)
	s.metrics.ModelCall("report", err)
	if err != nil {
		return nil, fmt.Errorf("failed to generate report: %w", err)
	}

	response := &models.ReportResponse{
		Selected: strings.Contains(report, selectedMarker),
		Feedback: report,
	}

	now := s.now()
	interview := &models.Interview{
		JobRole:          req.JobRole,
		Domain:           req.Domain,
		ResumeText:       req.Resume,
		FavoriteLanguage: req.FavoriteLanguage,
		InterviewMode:    req.InterviewMode,
		Responses:        string(responsesJSON),
		Selected:         response.Selected,
		Feedback:         response.Feedback,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.interviewRepo.Create(ctx, interview); err != nil {
		return nil, fmt.Errorf("failed to save interview: %w", err)
	}
	s.metrics.Report(response.Selected)

	log.Printf("💾 Interview %s saved (selected=%t)\n", interview.ID, response.Selected)

	return response, nil
}
