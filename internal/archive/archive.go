// Package archive keeps raw copies of inbound requests and outbound
// responses for later inspection. Writes are best-effort; a failed
// archive never blocks a reply.
package archive

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const timestampLayout = "2006-01-02_15-04-05"

// Store archives request/response pairs. SaveRequest returns a
// reference that ties the later response to its request.
type Store interface {
	SaveRequest(v any) (string, error)
	SaveResponse(ref string, v any) error
}

// FileStore writes JSON archives under a local directory:
// requests/request_<ref>.json and responses/response_<ref>.json.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// SaveRequest archives one inbound payload and returns its reference.
func (s *FileStore) SaveRequest(v any) (string, error) {
	ref := fmt.Sprintf("%s_%s", time.Now().Format(timestampLayout), uuid.NewString()[:8])
	if err := s.write("requests", "request_"+ref, v); err != nil {
		return ref, err
	}
	return ref, nil
}

// SaveResponse archives the response produced for an earlier request.
func (s *FileStore) SaveResponse(ref string, v any) error {
	return s.write("responses", "response_"+ref, v)
}

func (s *FileStore) write(folder, name string, v any) error {
	dir := filepath.Join(s.dir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating archive dir: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling archive payload: %w", err)
	}

	path := filepath.Join(dir, name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing archive file: %w", err)
	}
	return nil
}
