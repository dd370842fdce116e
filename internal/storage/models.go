package storage

import "time"

// Resume represents a stored parse result.
// Note: Keep this minimal for DB persistence; the full Record lives in raw_text.
type Resume struct {
	ID         int64    `json:"id"`
	Filename   string   `json:"filename"`
	FileType   string   `json:"file_type"`
	FileSize   int64    `json:"file_size"`
	RawText    string   `json:"raw_text"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Skills     []string `json:"skills"`
	Education  []string `json:"education"`
	Experience string   `json:"experience"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Criteria used to search stored resumes.
type Criteria struct {
	Email  string   `json:"email"`
	Skills []string `json:"skills"`
}
