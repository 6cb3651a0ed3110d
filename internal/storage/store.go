// Package storage keeps recorded runs on disk, one directory per run holding
// metadata.json, stats.csv and any rendered artifacts.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"

	"github.com/san-kum/backdrop/internal/anim"
	"github.com/san-kum/backdrop/internal/config"
	"github.com/san-kum/backdrop/internal/experiment"
)

const (
	metadataFile = "metadata.json"
	statsFile    = "stats.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Engine    string             `json:"engine"`
	Theme     string             `json:"theme"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Width     float64            `json:"width"`
	Height    float64            `json:"height"`
	Frames    int                `json:"frames"`
	FPS       int                `json:"fps"`
	Elapsed   time.Duration      `json:"elapsed_ns"`
	Metrics   map[string]float64 `json:"metrics"`
	Artifacts []string           `json:"artifacts,omitempty"`
}

// Save writes a new run directory and returns its ID.
func (s *Store) Save(cfg *config.Config, result *experiment.Result) (string, error) {
	runID := fmt.Sprintf("%s_%s", cfg.Engine, uuid.NewString())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := &RunMetadata{
		ID:        runID,
		Engine:    cfg.Engine,
		Theme:     string(cfg.Theme),
		Timestamp: time.Now(),
		Seed:      cfg.Seed,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Frames:    result.FramesRun,
		FPS:       cfg.FPS,
		Elapsed:   result.Elapsed,
		Metrics:   result.Metrics,
	}
	if err := s.writeMetadata(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, statsFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	stats := result.Stats
	if stats == nil {
		stats = []anim.Stats{}
	}
	if err := gocsv.MarshalFile(&stats, csvFile); err != nil {
		return "", fmt.Errorf("write stats: %w", err)
	}

	return runID, nil
}

// List returns every readable run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadStats(runID string) ([]anim.Stats, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, statsFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stats := []anim.Stats{}
	if err := gocsv.UnmarshalFile(file, &stats); err != nil {
		return nil, fmt.Errorf("read stats: %w", err)
	}
	return stats, nil
}

// ArtifactPath is where a named artifact of the run lives.
func (s *Store) ArtifactPath(runID, name string) string {
	return filepath.Join(s.baseDir, runID, name)
}

// AddArtifact records name in the run's metadata. The file itself is written
// by the caller at ArtifactPath.
func (s *Store) AddArtifact(runID, name string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	for _, a := range meta.Artifacts {
		if a == name {
			return nil
		}
	}
	meta.Artifacts = append(meta.Artifacts, name)
	return s.writeMetadata(meta)
}

func (s *Store) writeMetadata(meta *RunMetadata) error {
	f, err := os.Create(filepath.Join(s.baseDir, meta.ID, metadataFile))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
