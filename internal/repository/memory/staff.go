package memory

import (
	"context"
	"sync"

	"github.com/isj-group4/fingerprint-attendance-go/internal/domain/staff"
)

// staffRepository is an in-memory staff.Repository seeded at construction.
// Profiles keep seed order so listings are deterministic.
type staffRepository struct {
	mu       sync.RWMutex
	profiles []staff.Profile
}

func NewStaffRepository(profiles []staff.Profile) staff.Repository {
	copied := make([]staff.Profile, len(profiles))
	copy(copied, profiles)
	return &staffRepository{profiles: copied}
}

// GetByID implements staff.Repository.
func (r *staffRepository) GetByID(ctx context.Context, id int64) (staff.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return staff.Profile{}, staff.ErrProfileNotFound
}

// ListActive implements staff.Repository.
func (r *staffRepository) ListActive(ctx context.Context) ([]staff.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]staff.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

// ListAll implements staff.Repository.
func (r *staffRepository) ListAll(ctx context.Context) ([]staff.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]staff.Profile, len(r.profiles))
	copy(out, r.profiles)
	return out, nil
}

// ListByDepartment implements staff.Repository.
func (r *staffRepository) ListByDepartment(ctx context.Context, departmentID int64) ([]staff.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]staff.Profile, 0)
	for _, p := range r.profiles {
		if p.DepartmentID == departmentID {
			out = append(out, p)
		}
	}
	return out, nil
}

// ListDepartments implements staff.Repository.
func (r *staffRepository) ListDepartments(ctx context.Context) ([]staff.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[int64]struct{})
	out := make([]staff.Department, 0)
	for _, p := range r.profiles {
		if _, ok := seen[p.DepartmentID]; ok {
			continue
		}
		seen[p.DepartmentID] = struct{}{}
		out = append(out, staff.Department{ID: p.DepartmentID, Name: p.DepartmentName})
	}
	return out, nil
}
