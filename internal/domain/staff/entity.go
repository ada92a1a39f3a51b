package staff

// Profile is the read-only staff collaborator data the engine consumes. The
// engine never manages staff; it only resolves identifiers on recording and
// counts active heads for rate denominators.
type Profile struct {
	ID             int64
	Name           string
	Surname        string
	Email          string
	Active         bool
	DepartmentID   int64
	DepartmentName string
}

// FullName joins name and surname the way the admin web displays them.
func (p Profile) FullName() string {
	if p.Surname == "" {
		return p.Name
	}
	return p.Name + " " + p.Surname
}

type Department struct {
	ID   int64
	Name string
}
