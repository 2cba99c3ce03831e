package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ai-interviewer/internal/models"
	"alfredoptarigan/ai-interviewer/internal/services"
)

type InterviewHandler struct {
	interviewService services.InterviewService
}

func NewInterviewHandler(interviewService services.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		interviewService: interviewService,
	}
}

// HandleQuestion handles POST /interview/question
func (h *InterviewHandler) HandleQuestion(c *fiber.Ctx) error {
	var req models.InterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	question, err := h.interviewService.ResolveQuestion(c.UserContext(), &req)
	if err != nil {
		log.Printf("❌ Question generation failed: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to get interview question: %v", err),
		})
	}

	return c.JSON(models.QuestionResponse{Question: question})
}

// HandleReport handles POST /interview/report
func (h *InterviewHandler) HandleReport(c *fiber.Ctx) error {
	var req models.InterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	report, err := h.interviewService.GenerateReport(c.UserContext(), &req)
	if err != nil {
		log.Printf("❌ Report generation failed: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to generate report: %v", err),
		})
	}

	return c.JSON(report)
}
