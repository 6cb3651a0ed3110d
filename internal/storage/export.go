package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/backdrop/internal/anim"
)

type ExportData struct {
	Run   RunMetadata  `json:"run"`
	Stats []anim.Stats `json:"stats"`
}

// Export writes a run's metadata and per-frame stats as indented JSON.
func (s *Store) Export(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	stats, err := s.LoadStats(runID)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ExportData{Run: *meta, Stats: stats})
}

func (s *Store) ExportFile(path, runID string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return s.Export(file, runID)
}
