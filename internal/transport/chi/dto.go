package chi

import (
	"github.com/carelinkgh/carematch/internal/domain/match"
	"github.com/carelinkgh/carematch/internal/domain/profile"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type patientRequest struct {
	FullName       string `json:"fullName"`
	Condition      string `json:"condition"`
	Years          string `json:"years"`
	Schedule       string `json:"schedule"`
	Description    string `json:"description"`
	Special        string `json:"special"`
	MedicalHistory string `json:"medicalHistory"`
	Location       string `json:"location"`
	PhotoPath      string `json:"photoPath"`
}

type patientResponse struct {
	ID             string `json:"id"`
	FullName       string `json:"fullName"`
	Condition      string `json:"condition"`
	Years          string `json:"years"`
	Schedule       string `json:"schedule"`
	Description    string `json:"description,omitempty"`
	Special        string `json:"special,omitempty"`
	MedicalHistory string `json:"medicalHistory,omitempty"`
	Location       string `json:"location,omitempty"`
	PhotoURL       string `json:"photoUrl,omitempty"`
}

type qualificationRequest struct {
	Title    string `json:"title"`
	FilePath string `json:"filePath"`
}

type caregiverRequest struct {
	FullName       string                 `json:"fullName"`
	ProfileType    string                 `json:"type"`
	Bio            string                 `json:"bio"`
	EducationLevel string                 `json:"educationLevel"`
	Schedule       string                 `json:"schedule"`
	Location       string                 `json:"location"`
	Qualifications []qualificationRequest `json:"qualifications"`
	PhotoPath      string                 `json:"photoPath"`
	DocumentPath   string                 `json:"documentPath"`
	Active         bool                   `json:"isActive"`
	Available      bool                   `json:"isAvailable"`
	Verified       bool                   `json:"isVerified"`
}

type qualificationItem struct {
	Title   string `json:"title"`
	FileURL string `json:"fileUrl,omitempty"`
}

type caregiverResponse struct {
	ID             string              `json:"id"`
	FullName       string              `json:"fullName"`
	ProfileType    string              `json:"type"`
	Bio            string              `json:"bio,omitempty"`
	EducationLevel string              `json:"educationLevel,omitempty"`
	Schedule       string              `json:"schedule,omitempty"`
	Location       string              `json:"location,omitempty"`
	Qualifications []qualificationItem `json:"qualifications,omitempty"`
	PhotoURL       string              `json:"photoUrl,omitempty"`
	DocumentURL    string              `json:"documentUrl,omitempty"`
	Active         bool                `json:"isActive"`
	Available      bool                `json:"isAvailable"`
	Verified       bool                `json:"isVerified"`
}

type matchItem struct {
	caregiverResponse
	Score float64 `json:"score"`
}

type matchListResponse struct {
	Items []matchItem `json:"items"`
	Total int         `json:"total"`
}

func (s *Server) patientToResponse(p *profile.Patient) patientResponse {
	return patientResponse{
		ID:             p.ID(),
		FullName:       p.FullName(),
		Condition:      p.Condition(),
		Years:          p.Years(),
		Schedule:       p.Schedule(),
		Description:    p.Description(),
		Special:        p.Special(),
		MedicalHistory: p.MedicalHistory(),
		Location:       p.Location(),
		PhotoURL:       s.urls.PublicURL(p.PhotoPath()),
	}
}

func (s *Server) caregiverToResponse(c *profile.Caregiver) caregiverResponse {
	var quals []qualificationItem
	for _, q := range c.Qualifications() {
		quals = append(quals, qualificationItem{
			Title:   q.Title(),
			FileURL: s.urls.PublicURL(q.FilePath()),
		})
	}
	return caregiverResponse{
		ID:             c.ID(),
		FullName:       c.FullName(),
		ProfileType:    c.ProfileType(),
		Bio:            c.Bio(),
		EducationLevel: c.EducationLevel(),
		Schedule:       c.Schedule(),
		Location:       c.Location(),
		Qualifications: quals,
		PhotoURL:       s.urls.PublicURL(c.PhotoPath()),
		DocumentURL:    s.urls.PublicURL(c.DocumentPath()),
		Active:         c.Active(),
		Available:      c.Available(),
		Verified:       c.Verified(),
	}
}

func (s *Server) matchToItem(m *match.Match) matchItem {
	c := m.Caregiver()
	return matchItem{
		caregiverResponse: s.caregiverToResponse(&c),
		Score:             m.Score(),
	}
}
