package contract

import (
	"context"

	"pageant-coach-be/internal/model"
)

type PersonaRepository interface {
	List(ctx context.Context) ([]*model.Persona, error)
	// Load returns (nil, nil) when the persona does not exist or its
	// file cannot be parsed.
	Load(ctx context.Context, id string) (*model.Persona, error)
	Save(ctx context.Context, persona *model.Persona) error
	// Delete reports whether a file was actually removed.
	Delete(ctx context.Context, id string) (bool, error)
}
