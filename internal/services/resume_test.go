package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeService_Ingest(t *testing.T) {
	svc := NewResumeService()

	text, err := svc.Ingest([]byte("Jane Doe\nSenior Go Engineer - 8 years"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSenior Go Engineer - 8 years", text)
}

func TestResumeService_IngestMultiByteText(t *testing.T) {
	svc := NewResumeService()
	raw := []byte("Zoë Müller, 東京")

	text, err := svc.Ingest(raw)
	require.NoError(t, err)
	assert.Equal(t, "Zoë Müller, 東京", text)
	assert.Len(t, text, len(raw))
}

func TestResumeService_IngestEmpty(t *testing.T) {
	svc := NewResumeService()

	for _, data := range [][]byte{nil, {}} {
		text, err := svc.Ingest(data)
		assert.ErrorIs(t, err, ErrEmptyResume)
		assert.Empty(t, text)
	}
}

func TestResumeService_IngestDoesNotParseDocuments(t *testing.T) {
	svc := NewResumeService()
	raw := []byte("%PDF-1.7\n1 0 obj")

	text, err := svc.Ingest(raw)
	require.NoError(t, err)
	assert.Equal(t, string(raw), text)
}
