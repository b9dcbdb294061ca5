package shift

import (
	"context"

	"github.com/fekuna/omnipos-shift-service/internal/cash"
	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/fekuna/omnipos-shift-service/internal/shift/dto"
)

type UseCase interface {
	OpenShift(ctx context.Context, input *dto.OpenShiftInput) (*model.Shift, error)
	CloseShift(ctx context.Context, input *dto.CloseShiftInput) (*model.Shift, error)
	PreviewClose(ctx context.Context, input *dto.CloseShiftInput) (*dto.ClosePreview, error)
	StageValues(ctx context.Context, input *dto.StageValuesInput) (*model.Shift, error)

	GetCurrentShift(ctx context.Context) (*model.Shift, error)
	GetShift(ctx context.Context, id string) (*model.Shift, error)
	ListShifts(ctx context.Context, filters *dto.ShiftFilters) ([]model.Shift, int, error)
	GetSummary(ctx context.Context, id string) (*dto.Summary, error)
	NextInitial(ctx context.Context) (*cash.Initial, error)

	// Collaborators
	AddCollaborator(ctx context.Context, input *dto.CollaboratorInput) (*model.Collaborator, error)
	RemoveCollaborator(ctx context.Context, input *dto.CollaboratorInput) error
	ListCollaborators(ctx context.Context, shiftID string) ([]model.Collaborator, error)
}
