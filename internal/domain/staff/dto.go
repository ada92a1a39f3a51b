package staff

// ProfileResponse is the wire shape of a staff profile.
type ProfileResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Surname        string `json:"surname"`
	FullName       string `json:"fullName"`
	Email          string `json:"email,omitempty"`
	Active         bool   `json:"active"`
	DepartmentID   int64  `json:"departmentId"`
	DepartmentName string `json:"departmentName"`
}

func (p Profile) ToResponse() ProfileResponse {
	return ProfileResponse{
		ID:             p.ID,
		Name:           p.Name,
		Surname:        p.Surname,
		FullName:       p.FullName(),
		Email:          p.Email,
		Active:         p.Active,
		DepartmentID:   p.DepartmentID,
		DepartmentName: p.DepartmentName,
	}
}

type DepartmentResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
