package trip

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tripsmith/trip-planner-service/internal/app/dto"
	"github.com/tripsmith/trip-planner-service/internal/pkg/utils"
)

const artifactTimeLayout = "20060102_150405"

// FileStore persists finished itineraries as JSON artifacts.
type FileStore struct {
	dir string
	now func() time.Time
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{
		dir: dir,
		now: time.Now,
	}
}

// Save writes the itinerary to <dir>/itinerary_<city>_<timestamp>.json and
// returns the path. Persistence is auxiliary: callers log failures but still
// return the itinerary.
func (s *FileStore) Save(it dto.Itinerary) (string, error) {
	name := fmt.Sprintf("itinerary_%s_%s.json",
		utils.Slugify(it.Destination), s.now().Format(artifactTimeLayout))
	path := filepath.Join(s.dir, name)

	data, err := json.MarshalIndent(it, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal itinerary: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write itinerary: %w", err)
	}

	return path, nil
}
