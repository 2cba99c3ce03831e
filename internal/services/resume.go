package services

import "errors"

var ErrEmptyResume = errors.New("resume file is missing or empty")

type ResumeService interface {
	Ingest(data []byte) (string, error)
}

type resumeService struct{}

func NewResumeService() ResumeService {
	return &resumeService{}
}

// Ingest treats the uploaded bytes as plain text. No document format is
// parsed.
func (r *resumeService) Ingest(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyResume
	}
	return string(data), nil
}
