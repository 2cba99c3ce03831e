package handlers

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/ai-interviewer/internal/models"
	"alfredoptarigan/ai-interviewer/internal/repositories"
)

type ResultHandler struct {
	interviewRepo repositories.InterviewRepository
}

func NewResultHandler(interviewRepo repositories.InterviewRepository) *ResultHandler {
	return &ResultHandler{
		interviewRepo: interviewRepo,
	}
}

// HandleGetResult handles GET /interview/report/:id
func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	interviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid interview ID format",
		})
	}

	interview, err := h.interviewRepo.FindByID(c.UserContext(), interviewID)
	if err != nil {
		if errors.Is(err, repositories.ErrInterviewNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Interview not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load interview",
		})
	}

	response := models.InterviewResultResponse{
		ID:               interview.ID.String(),
		JobRole:          interview.JobRole,
		Domain:           interview.Domain,
		FavoriteLanguage: interview.FavoriteLanguage,
		InterviewMode:    interview.InterviewMode,
		Selected:         interview.Selected,
		Feedback:         interview.Feedback,
		CreatedAt:        interview.CreatedAt,
		UpdatedAt:        interview.UpdatedAt,
	}

	// Responses are stored as JSON text; a record that fails to decode is
	// still returned without them.
	if interview.Responses != "" {
		if err := json.Unmarshal([]byte(interview.Responses), &response.Responses); err != nil {
			log.Printf("⚠️  Interview %s has undecodable responses: %v\n", interview.ID, err)
		}
	}

	return c.JSON(response)
}
