package cvfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/google/uuid"
)

// Store persists uploaded resume files under a single directory.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// SaveUpload writes the uploaded content to a uniquely named file that keeps
// the original extension, and returns the path and size.
func (s *Store) SaveUpload(filename string, reader io.Reader) (string, int64, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", 0, fmt.Errorf("failed to create uploads dir: %w", err)
	}

	path := filepath.Join(s.dir, uuid.New().String()+filepath.Ext(filename))

	file, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	size, err := io.Copy(file, reader)
	if err != nil {
		return "", 0, fmt.Errorf("failed to save file: %w", err)
	}

	return path, size, nil
}

// ExtractText pulls plain text out of a saved resume file based on its
// extension.
func ExtractText(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".docx", ".doc", ".rtf", ".odt":
		// Use docconv for document formats
		res, err := docconv.ConvertPath(path)
		if err != nil {
			return "", fmt.Errorf("failed to parse document: %w", err)
		}
		return res.Body, nil
	case ".txt":
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read text file: %w", err)
		}
		return string(content), nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}
