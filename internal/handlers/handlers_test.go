package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/ai-interviewer/internal/models"
	"alfredoptarigan/ai-interviewer/internal/repositories"
	"alfredoptarigan/ai-interviewer/internal/services"
)

type stubInterviewService struct {
	question    string
	report      *models.ReportResponse
	err         error
	questionReq *models.InterviewRequest
	reportReq   *models.InterviewRequest
	calls       int
}

func (s *stubInterviewService) ResolveQuestion(_ context.Context, req *models.InterviewRequest) (string, error) {
	s.calls++
	s.questionReq = req
	return s.question, s.err
}

func (s *stubInterviewService) GenerateReport(_ context.Context, req *models.InterviewRequest) (*models.ReportResponse, error) {
	s.calls++
	s.reportReq = req
	return s.report, s.err
}

type stubInterviewRepo struct {
	interview *models.Interview
	err       error
}

func (s *stubInterviewRepo) Create(context.Context, *models.Interview) error {
	return errors.New("not used")
}

func (s *stubInterviewRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Interview, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.interview == nil || s.interview.ID != id {
		return nil, repositories.ErrInterviewNotFound
	}
	return s.interview, nil
}

func newTestApp(resume *ResumeHandler, interview *InterviewHandler, result *ResultHandler) *fiber.App {
	app := fiber.New()
	if resume != nil {
		app.Post("/resume", resume.HandleUpload)
	}
	if interview != nil {
		app.Post("/interview/question", interview.HandleQuestion)
		app.Post("/interview/report", interview.HandleReport)
	}
	if result != nil {
		app.Get("/interview/report/:id", result.HandleGetResult)
	}
	return app
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if field != "" {
		part, err := writer.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	} else {
		require.NoError(t, writer.WriteField("note", "no file"))
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func decodeBody(t *testing.T, resp *http.Response, target any) {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, target), string(data))
}

func TestResumeHandler_Upload(t *testing.T) {
	app := newTestApp(NewResumeHandler(services.NewResumeService(), 1024), nil, nil)

	body, contentType := multipartBody(t, "resume", "cv.txt", []byte("Go developer"))
	req := httptest.NewRequest(http.MethodPost, "/resume", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out models.ResumeResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "Go developer", out.ResumeText)
}

func TestResumeHandler_UploadRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		content []byte
	}{
		{"missing file", "", nil},
		{"empty file", "resume", []byte{}},
		{"too large", "resume", bytes.Repeat([]byte("a"), 2048)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interviews := &stubInterviewService{}
			app := newTestApp(
				NewResumeHandler(services.NewResumeService(), 1024),
				NewInterviewHandler(interviews),
				nil,
			)

			body, contentType := multipartBody(t, tt.field, "cv.txt", tt.content)
			req := httptest.NewRequest(http.MethodPost, "/resume", body)
			req.Header.Set("Content-Type", contentType)

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, 0, interviews.calls)
		})
	}
}

func TestInterviewHandler_Question(t *testing.T) {
	svc := &stubInterviewService{question: "What is a goroutine?"}
	app := newTestApp(nil, NewInterviewHandler(svc), nil)

	payload := `{"jobRole":"Backend","domain":"Fintech","resume":"Go","round":"technical","favoriteLanguage":"Go","interviewMode":"online"}`
	req := httptest.NewRequest(http.MethodPost, "/interview/question", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out models.QuestionResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "What is a goroutine?", out.Question)

	require.NotNil(t, svc.questionReq)
	assert.Equal(t, "Backend", svc.questionReq.JobRole)
	assert.Equal(t, "technical", svc.questionReq.Round)
	assert.Equal(t, "online", svc.questionReq.InterviewMode)
}

func TestInterviewHandler_InvalidPayload(t *testing.T) {
	svc := &stubInterviewService{}
	app := newTestApp(nil, NewInterviewHandler(svc), nil)

	for _, path := range []string{"/interview/question", "/interview/report"} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, path)
	}
	assert.Equal(t, 0, svc.calls)
}

func TestInterviewHandler_ServiceFailure(t *testing.T) {
	svc := &stubInterviewService{err: errors.New("model unavailable")}
	app := newTestApp(nil, NewInterviewHandler(svc), nil)

	for _, path := range []string{"/interview/question", "/interview/report"} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"jobRole":"x"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode, path)

		var out map[string]any
		decodeBody(t, resp, &out)
		assert.Contains(t, out["error"], "model unavailable")
	}
}

func TestInterviewHandler_Report(t *testing.T) {
	svc := &stubInterviewService{report: &models.ReportResponse{Selected: true, Feedback: "Selected. Strong."}}
	app := newTestApp(nil, NewInterviewHandler(svc), nil)

	payload := `{"jobRole":"Backend","domain":"Fintech","resume":"Go","favoriteLanguage":"Go","responses":{"q1":"a1"}}`
	req := httptest.NewRequest(http.MethodPost, "/interview/report", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out models.ReportResponse
	decodeBody(t, resp, &out)
	assert.True(t, out.Selected)
	assert.Equal(t, "Selected. Strong.", out.Feedback)

	require.NotNil(t, svc.reportReq)
	assert.Equal(t, map[string]string{"q1": "a1"}, svc.reportReq.Responses)
}

func TestResultHandler_GetResult(t *testing.T) {
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	interview := &models.Interview{
		ID:               uuid.New(),
		JobRole:          "Backend",
		Domain:           "Fintech",
		FavoriteLanguage: "Go",
		InterviewMode:    "online",
		Responses:        `{"q1":"a1"}`,
		Selected:         true,
		Feedback:         "Selected",
		CreatedAt:        created,
		UpdatedAt:        created,
	}
	app := newTestApp(nil, nil, NewResultHandler(&stubInterviewRepo{interview: interview}))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/interview/report/"+interview.ID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out models.InterviewResultResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, interview.ID.String(), out.ID)
	assert.Equal(t, "Backend", out.JobRole)
	assert.True(t, out.Selected)
	assert.Equal(t, map[string]string{"q1": "a1"}, out.Responses)
	assert.True(t, created.Equal(out.CreatedAt))
}

func TestResultHandler_Errors(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		app := newTestApp(nil, nil, NewResultHandler(&stubInterviewRepo{}))
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/interview/report/not-a-uuid", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		app := newTestApp(nil, nil, NewResultHandler(&stubInterviewRepo{}))
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/interview/report/"+uuid.NewString(), nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("store failure", func(t *testing.T) {
		app := newTestApp(nil, nil, NewResultHandler(&stubInterviewRepo{err: errors.New("db down")}))
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/interview/report/"+uuid.NewString(), nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}
