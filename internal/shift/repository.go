package shift

import (
	"context"

	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/fekuna/omnipos-shift-service/internal/shift/dto"
)

// Repository finders return nil, nil when nothing matches.
type Repository interface {
	CreateIfNoneOpen(ctx context.Context, s *model.Shift) (bool, error)
	FindOpen(ctx context.Context) (*model.Shift, error)
	// FindOpenForUpdate row-locks the open shift for the rest of the
	// transaction.
	FindOpenForUpdate(ctx context.Context) (*model.Shift, error)
	FindByID(ctx context.Context, id string) (*model.Shift, error)
	// FindByIDForShare keeps a concurrent close out until the transaction
	// ends.
	FindByIDForShare(ctx context.Context, id string) (*model.Shift, error)
	FindLastClosed(ctx context.Context) (*model.Shift, error)
	FindAll(ctx context.Context, filters *dto.ShiftFilters) ([]model.Shift, int, error)
	Close(ctx context.Context, s *model.Shift) error
	StageValues(ctx context.Context, s *model.Shift) (bool, error)

	AddCollaborator(ctx context.Context, c *model.Collaborator) error
	RemoveCollaborator(ctx context.Context, shiftID, userID string) (bool, error)
	ListCollaborators(ctx context.Context, shiftID string) ([]model.Collaborator, error)
}
