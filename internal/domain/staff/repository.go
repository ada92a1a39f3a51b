package staff

import "context"

// Repository defines read access to staff profiles. ListActive returns
// profiles in insertion order; the aggregator relies on that order for
// stable tie-breaking.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Profile, error)
	ListActive(ctx context.Context) ([]Profile, error)
	ListAll(ctx context.Context) ([]Profile, error)
	ListByDepartment(ctx context.Context, departmentID int64) ([]Profile, error)
	ListDepartments(ctx context.Context) ([]Department, error)
}
