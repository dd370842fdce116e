package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

type DB struct {
	connection *sql.DB
}

func NewDB(dataSourceName string) (*DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, err
	}

	// Connection pool tuning
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &DB{connection: db}, nil
}

func (db *DB) Close() {
	if err := db.connection.Close(); err != nil {
		log.Println("Error closing the database connection:", err)
	}
}

// SaveResume stores a parse result and returns its id.
func (db *DB) SaveResume(ctx context.Context, r *Resume) (int64, error) {
	var id int64
	query := `
        INSERT INTO resumes (filename, file_type, file_size, raw_text, email, phone, skills, education, experience, uploaded_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
        RETURNING id
    `
	err := db.connection.QueryRowContext(ctx, query,
		r.Filename, r.FileType, r.FileSize, r.RawText, r.Email, r.Phone,
		strings.Join(r.Skills, ","), strings.Join(r.Education, ","), r.Experience,
	).Scan(&id)

	return id, err
}

// SaveResumeEntity stores one extracted entity row for a resume.
func (db *DB) SaveResumeEntity(ctx context.Context, resumeID int64, entityType, entityValue string) error {
	query := `
        INSERT INTO resume_entities (resume_id, entity_type, entity_value)
        VALUES ($1, $2, $3)
    `
	_, err := db.connection.ExecContext(ctx, query, resumeID, entityType, entityValue)
	return err
}

// DeleteResumeEntities removes all entity rows for a resume, used before a
// re-extraction pass.
func (db *DB) DeleteResumeEntities(ctx context.Context, resumeID int64) error {
	_, err := db.connection.ExecContext(ctx, `DELETE FROM resume_entities WHERE resume_id = $1`, resumeID)
	return err
}

// GetResumeByID fetches a stored resume.
func (db *DB) GetResumeByID(ctx context.Context, id int64) (*Resume, error) {
	r := &Resume{}
	var skills, education string
	query := `SELECT id, filename, file_type, file_size, raw_text, email, phone, skills, education, experience, uploaded_at
              FROM resumes WHERE id = $1`
	err := db.connection.QueryRowContext(ctx, query, id).Scan(
		&r.ID, &r.Filename, &r.FileType, &r.FileSize, &r.RawText,
		&r.Email, &r.Phone, &skills, &education, &r.Experience, &r.UploadedAt,
	)
	if err != nil {
		return nil, err
	}
	r.Skills = splitAndTrim(skills)
	r.Education = splitAndTrim(education)
	return r, nil
}

// ListResumes returns up to limit stored resumes, newest first.
func (db *DB) ListResumes(ctx context.Context, limit int) ([]*Resume, error) {
	query := `SELECT id, filename, file_type, file_size, raw_text, email, phone, skills, education, experience, uploaded_at
              FROM resumes ORDER BY uploaded_at DESC LIMIT $1`
	rows, err := db.connection.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanResumes(rows)
}

// SearchResumes returns resumes matching the criteria using ILIKE and simple
// comma-list skills match.
func (db *DB) SearchResumes(ctx context.Context, criteria *Criteria) ([]*Resume, error) {
	base := `SELECT id, filename, file_type, file_size, raw_text, email, phone, skills, education, experience, uploaded_at FROM resumes`
	var where []string
	var args []interface{}
	i := 1

	if criteria == nil {
		criteria = &Criteria{}
	}

	if criteria.Email != "" {
		where = append(where, fmt.Sprintf("email ILIKE $%d", i))
		args = append(args, "%"+criteria.Email+"%")
		i++
	}
	if len(criteria.Skills) > 0 {
		var skillConds []string
		for _, s := range criteria.Skills {
			skillConds = append(skillConds, fmt.Sprintf("skills ILIKE $%d", i))
			args = append(args, "%"+s+"%")
			i++
		}
		where = append(where, "("+strings.Join(skillConds, " OR ")+")")
	}

	if len(where) > 0 {
		base += " WHERE " + strings.Join(where, " AND ")
	}
	base += " ORDER BY uploaded_at DESC LIMIT 50"

	rows, err := db.connection.QueryContext(ctx, base, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanResumes(rows)
}

func scanResumes(rows *sql.Rows) ([]*Resume, error) {
	var res []*Resume
	for rows.Next() {
		r := &Resume{}
		var skills, education string
		if err := rows.Scan(&r.ID, &r.Filename, &r.FileType, &r.FileSize, &r.RawText,
			&r.Email, &r.Phone, &skills, &education, &r.Experience, &r.UploadedAt); err != nil {
			return nil, err
		}
		r.Skills = splitAndTrim(skills)
		r.Education = splitAndTrim(education)
		res = append(res, r)
	}
	return res, rows.Err()
}

// GetConnection returns the underlying database connection for advanced queries
func (db *DB) GetConnection() *sql.DB {
	return db.connection
}

// helper to split comma-separated values
func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
