package content

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// File names within the content directory, matching the original event
// document layout.
const (
	eventDetailsFile   = "event_details.txt"
	previousEventFile  = "sullstice_2024.txt"
	currentLineupFile  = "sullstice_2025_lineup.txt"
	updatedDetailsFile = "updated_details.txt"
)

// FileProvider reads the knowledge sources from local text files. Used
// in dev mode and tests.
type FileProvider struct {
	dir string
	log zerolog.Logger
}

func NewFileProvider(dir string) *FileProvider {
	return &FileProvider{
		dir: dir,
		log: zerolog.New(os.Stdout).With().Timestamp().Str("component", "content").Logger(),
	}
}

func (p *FileProvider) EventDetails(ctx context.Context) string {
	return p.load(eventDetailsFile)
}

func (p *FileProvider) PreviousEvent(ctx context.Context) string {
	return p.load(previousEventFile)
}

func (p *FileProvider) CurrentLineup(ctx context.Context) string {
	return p.load(currentLineupFile)
}

func (p *FileProvider) UpdatedEventDetails(ctx context.Context) string {
	return p.load(updatedDetailsFile)
}

func (p *FileProvider) load(name string) string {
	data, err := os.ReadFile(filepath.Join(p.dir, name))
	if err != nil {
		p.log.Error().Err(err).Str("file", name).Msg("Failed to load content file")
		return ""
	}
	return string(data)
}
