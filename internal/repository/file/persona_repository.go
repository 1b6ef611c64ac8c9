package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"pageant-coach-be/internal/model"
	"pageant-coach-be/internal/pkg/logger"
)

// PersonaRepository keeps one JSON file per persona under a directory.
// The directory is created lazily on the first Save.
type PersonaRepository struct {
	dir    string
	logger logger.ILogger
}

func NewPersonaRepository(dir string, log logger.ILogger) *PersonaRepository {
	if log == nil {
		log = logger.NewNop()
	}
	return &PersonaRepository{dir: dir, logger: log}
}

func (r *PersonaRepository) path(id string) string {
	return filepath.Join(r.dir, id+".json")
}

func (r *PersonaRepository) List(ctx context.Context) ([]*model.Persona, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*model.Persona{}, nil
		}
		return nil, fmt.Errorf("reading personas dir: %w", err)
	}

	personas := make([]*model.Persona, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".json")
		p, err := r.Load(ctx, id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			// Corrupt file: skip it rather than failing the whole listing.
			r.logger.Warn("PersonaRepository", "skipping unreadable persona file", map[string]interface{}{
				"file": entry.Name(),
			})
			continue
		}
		personas = append(personas, p)
	}

	sort.Slice(personas, func(i, j int) bool { return personas[i].Name < personas[j].Name })
	return personas, nil
}

func (r *PersonaRepository) Load(ctx context.Context, id string) (*model.Persona, error) {
	data, err := os.ReadFile(r.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading persona %s: %w", id, err)
	}

	var persona model.Persona
	if err := json.Unmarshal(data, &persona); err != nil {
		r.logger.Warn("PersonaRepository", "persona file is not valid JSON", map[string]interface{}{
			"id":    id,
			"error": err.Error(),
		})
		return nil, nil
	}
	if persona.ID == "" {
		persona.ID = id
	}
	return &persona, nil
}

func (r *PersonaRepository) Save(ctx context.Context, persona *model.Persona) error {
	if persona.ID == "" {
		return fmt.Errorf("persona id is required")
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("creating personas dir: %w", err)
	}

	data, err := json.MarshalIndent(persona, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding persona %s: %w", persona.ID, err)
	}
	if err := os.WriteFile(r.path(persona.ID), data, 0o644); err != nil {
		return fmt.Errorf("writing persona %s: %w", persona.ID, err)
	}
	return nil
}

func (r *PersonaRepository) Delete(ctx context.Context, id string) (bool, error) {
	err := os.Remove(r.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("deleting persona %s: %w", id, err)
	}
	return true, nil
}
