package entstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/athletiq/athletiq_backend/internal/domain/injury"
	"github.com/athletiq/athletiq_backend/internal/repo"
	entuser "github.com/athletiq/athletiq_backend/internal/repo/user"
)

// Directory answers actor-existence checks against the user table.
// Suspended accounts do not count as existing for case assignment.
type Directory struct {
	db *repo.Client
}

var _ injury.Directory = (*Directory)(nil)

func NewDirectory(db *repo.Client) *Directory {
	return &Directory{db: db}
}

func (d *Directory) AthleteExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return d.exists(ctx, id, entuser.RoleAthlete)
}

func (d *Directory) DoctorExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return d.exists(ctx, id, entuser.RoleDoctor)
}

func (d *Directory) exists(ctx context.Context, id uuid.UUID, role entuser.Role) (bool, error) {
	ok, err := d.db.User.Query().
		Where(
			entuser.ID(id),
			entuser.RoleEQ(role),
			entuser.StatusEQ(entuser.StatusACTIVE),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check %s %s: %w", role, id, err)
	}
	return ok, nil
}
