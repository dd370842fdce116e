package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"resume-extract/internal/cvfile"
	"resume-extract/internal/storage"
)

// UploadHandler handles resume file uploads and extraction
// @Summary Upload and parse a resume
// @Description Upload a resume file (PDF/DOCX/TXT), extract structured fields and store the result
// @Tags resume
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume file (PDF, DOCX or TXT)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /resume/upload [post]
func (a *API) UploadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	startTime := time.Now()

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "file too large or invalid (max 10MB)", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "no file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// Validate file type
	ext := filepath.Ext(header.Filename)
	if ext != ".pdf" && ext != ".docx" && ext != ".doc" && ext != ".txt" {
		http.Error(w, "invalid file type (supported: PDF, DOCX, TXT)", http.StatusBadRequest)
		return
	}

	path, size, err := a.files.SaveUpload(header.Filename, file)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to save upload: %v", err), http.StatusInternalServerError)
		return
	}

	text, err := cvfile.ExtractText(path)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to parse resume: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("Resume saved: %s (%d bytes, %d chars of text)", path, size, len(text))

	record := a.extractor.ParseResume(r.Context(), text)
	if record == nil {
		http.Error(w, "resume contains no extractable text", http.StatusBadRequest)
		return
	}

	var experience string
	if len(record.Experience) > 0 {
		experience = record.Experience[0]
	}

	resumeID, err := a.db.SaveResume(r.Context(), &storage.Resume{
		Filename:   header.Filename,
		FileType:   ext,
		FileSize:   size,
		RawText:    record.RawText,
		Email:      record.Contact.Email,
		Phone:      record.Contact.Phone,
		Skills:     record.Skills,
		Education:  record.Education,
		Experience: experience,
	})
	if err != nil {
		log.Printf("Failed to save resume: %v", err)
		http.Error(w, "failed to save resume", http.StatusInternalServerError)
		return
	}

	log.Printf("Resume saved to database with ID: %d", resumeID)

	for _, skill := range record.Skills {
		_ = a.db.SaveResumeEntity(r.Context(), resumeID, "skill", skill)
	}
	for _, edu := range record.Education {
		_ = a.db.SaveResumeEntity(r.Context(), resumeID, "education", edu)
	}

	response := map[string]interface{}{
		"resume_id":          resumeID,
		"filename":           header.Filename,
		"file_type":          ext,
		"file_size":          size,
		"text_length":        len(text),
		"record":             record,
		"processing_time_ms": time.Since(startTime).Milliseconds(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("ERROR: Failed to encode JSON response: %v", err)
	}
}

// ParseHandler parses raw resume text without storing it
// @Summary Parse raw resume text
// @Description Extract structured fields from raw resume text
// @Tags resume
// @Accept json
// @Produce json
// @Param body body ParseRequest true "Raw resume text"
// @Success 200 {object} resume.Record
// @Failure 400 {object} map[string]string
// @Router /resume/parse [post]
func (a *API) ParseHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	record := a.extractor.ParseResume(r.Context(), req.Text)
	if record == nil {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}

// ParseRequest is the body of POST /api/resume/parse.
type ParseRequest struct {
	Text string `json:"text"`
}

// SearchHandler searches stored resumes
// @Summary Search resumes
// @Description Search stored resumes by email or skills
// @Tags resume
// @Accept json
// @Produce json
// @Param criteria body storage.Criteria true "Search criteria"
// @Success 200 {array} storage.Resume
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /resume/search [post]
func (a *API) SearchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var crit storage.Criteria
	if err := json.NewDecoder(r.Body).Decode(&crit); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	resumes, err := a.db.SearchResumes(r.Context(), &crit)
	if err != nil {
		http.Error(w, "search error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resumes)
}
