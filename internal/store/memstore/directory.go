package memstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/athletiq/athletiq_backend/internal/domain/injury"
)

// Directory is an in-memory actor directory for tests and local runs.
type Directory struct {
	mu       sync.RWMutex
	athletes map[uuid.UUID]bool
	doctors  map[uuid.UUID]bool
}

var _ injury.Directory = (*Directory)(nil)

func NewDirectory() *Directory {
	return &Directory{
		athletes: make(map[uuid.UUID]bool),
		doctors:  make(map[uuid.UUID]bool),
	}
}

func (d *Directory) AddAthlete(id uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.athletes[id] = true
}

func (d *Directory) AddDoctor(id uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.doctors[id] = true
}

func (d *Directory) AthleteExists(_ context.Context, id uuid.UUID) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.athletes[id], nil
}

func (d *Directory) DoctorExists(_ context.Context, id uuid.UUID) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.doctors[id], nil
}
