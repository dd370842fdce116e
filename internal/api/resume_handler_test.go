package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-extract/internal/nlp"
	"resume-extract/internal/resume"
)

func newTestAPI() *API {
	// No DB and no capabilities; the parse endpoint needs neither
	return &API{extractor: resume.NewExtractor(nlp.Blank{}, nil)}
}

func TestParseHandler(t *testing.T) {
	a := newTestAPI()

	body, _ := json.Marshal(ParseRequest{
		Text: "Contact: jane@example.com, (555) 123-4567. Experience: Built systems using Python and Docker.",
	})
	req := httptest.NewRequest("POST", "/api/resume/parse", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	a.ParseHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var record resume.Record
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &record))
	assert.Equal(t, "jane@example.com", record.Contact.Email)
	assert.Equal(t, "(555) 123-4567", record.Contact.Phone)
	assert.Subset(t, record.Skills, []string{"python", "docker"})
	assert.Len(t, record.Experience, 1)
}

func TestParseHandler_EmptyText(t *testing.T) {
	a := newTestAPI()

	body, _ := json.Marshal(ParseRequest{Text: ""})
	req := httptest.NewRequest("POST", "/api/resume/parse", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	a.ParseHandler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestParseHandler_InvalidJSON(t *testing.T) {
	a := newTestAPI()

	req := httptest.NewRequest("POST", "/api/resume/parse", bytes.NewReader([]byte("not json")))
	rr := httptest.NewRecorder()

	a.ParseHandler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestParseHandler_MethodNotAllowed(t *testing.T) {
	a := newTestAPI()

	req := httptest.NewRequest("GET", "/api/resume/parse", nil)
	rr := httptest.NewRecorder()

	a.ParseHandler(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestRouter_Health(t *testing.T) {
	router := NewRouter(newTestAPI())

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rr.Body.String())
}

func TestUploadHandler_NoFile(t *testing.T) {
	a := newTestAPI()

	req := httptest.NewRequest("POST", "/api/resume/upload", bytes.NewReader(nil))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xxx")
	rr := httptest.NewRecorder()

	a.UploadHandler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
