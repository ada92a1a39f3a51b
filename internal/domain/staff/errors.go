package staff

import "errors"

var (
	ErrProfileNotFound    = errors.New("staff profile not found")
	ErrDepartmentNotFound = errors.New("department not found")
)
