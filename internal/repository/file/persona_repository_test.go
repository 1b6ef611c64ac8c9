package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pageant-coach-be/internal/model"
)

func TestPersonaRoundTrip(t *testing.T) {
	repo := NewPersonaRepository(t.TempDir(), nil)
	ctx := context.Background()

	persona := &model.Persona{
		ID:       "p1",
		Name:     "Maya Santos",
		Country:  "Philippines",
		Platform: "Literacy access",
		Values:   []string{"service", "empathy"},
		PersonalStories: []model.PersonalStory{
			{Title: "Teaching", Text: "Ran a reading program.", KeyLesson: "Consistency compounds."},
		},
	}
	require.NoError(t, repo.Save(ctx, persona))

	loaded, err := repo.Load(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, persona, loaded)
}

func TestPersonaLoadMissing(t *testing.T) {
	repo := NewPersonaRepository(t.TempDir(), nil)

	loaded, err := repo.Load(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestPersonaLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{broken"), 0o644))
	repo := NewPersonaRepository(dir, nil)

	loaded, err := repo.Load(context.Background(), "bad")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestPersonaListSortedAndSkipsCorrupt(t *testing.T) {
	dir := t.TempDir()
	repo := NewPersonaRepository(dir, nil)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &model.Persona{ID: "b", Name: "Zara"}))
	require.NoError(t, repo.Save(ctx, &model.Persona{ID: "a", Name: "Amara"}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{nope"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644))

	personas, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, personas, 2)
	assert.Equal(t, "Amara", personas[0].Name)
	assert.Equal(t, "Zara", personas[1].Name)
}

func TestPersonaListMissingDir(t *testing.T) {
	repo := NewPersonaRepository(filepath.Join(t.TempDir(), "never-created"), nil)

	personas, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, personas)
}

func TestPersonaDelete(t *testing.T) {
	repo := NewPersonaRepository(t.TempDir(), nil)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &model.Persona{ID: "p1", Name: "Maya"}))

	removed, err := repo.Delete(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestPersonaSaveRequiresID(t *testing.T) {
	repo := NewPersonaRepository(t.TempDir(), nil)
	err := repo.Save(context.Background(), &model.Persona{Name: "No ID"})
	assert.Error(t, err)
}

func TestPersonaLoadBackfillsID(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "legacy.json"), []byte(`{"name": "Legacy"}`), 0o644))
	repo := NewPersonaRepository(dir, nil)

	loaded, err := repo.Load(context.Background(), "legacy")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "legacy", loaded.ID)
}
