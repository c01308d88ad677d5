package carematch

import "github.com/carelinkgh/carematch/internal/domain/profile"

// Patient is the public patient record.
type Patient struct {
	ID             string
	FullName       string
	Condition      string
	Years          string
	Schedule       string
	Description    string
	Special        string
	MedicalHistory string
	Location       string
	PhotoPath      string
}

// Qualification is a caregiver qualification.
type Qualification struct {
	Title    string
	FilePath string
}

// Caregiver is the public caregiver record.
type Caregiver struct {
	ID             string
	FullName       string
	Type           string
	Bio            string
	EducationLevel string
	Schedule       string
	Location       string
	Qualifications []Qualification
	PhotoPath      string
	DocumentPath   string
	Active         bool
	Available      bool
	Verified       bool
}

// Match pairs a caregiver with its combined relevance score.
type Match struct {
	Caregiver Caregiver
	Score     float64
}

func patientToDomain(p Patient) profile.Patient {
	return profile.NewPatient(
		p.ID, p.FullName, p.Condition, p.Years, p.Schedule,
		p.Description, p.Special, p.MedicalHistory, p.Location, p.PhotoPath,
	)
}

func patientFromDomain(p *profile.Patient) Patient {
	return Patient{
		ID:             p.ID(),
		FullName:       p.FullName(),
		Condition:      p.Condition(),
		Years:          p.Years(),
		Schedule:       p.Schedule(),
		Description:    p.Description(),
		Special:        p.Special(),
		MedicalHistory: p.MedicalHistory(),
		Location:       p.Location(),
		PhotoPath:      p.PhotoPath(),
	}
}

func caregiverToDomain(c Caregiver) profile.Caregiver {
	quals := make([]profile.Qualification, 0, len(c.Qualifications))
	for _, q := range c.Qualifications {
		quals = append(quals, profile.NewQualification(q.Title, q.FilePath))
	}
	return profile.NewCaregiver(
		c.ID, c.FullName, c.Type, c.Bio, c.EducationLevel, c.Schedule,
		c.Location, quals, c.PhotoPath, c.DocumentPath,
		c.Active, c.Available, c.Verified,
	)
}

func caregiverFromDomain(c *profile.Caregiver) Caregiver {
	var quals []Qualification
	for _, q := range c.Qualifications() {
		quals = append(quals, Qualification{Title: q.Title(), FilePath: q.FilePath()})
	}
	return Caregiver{
		ID:             c.ID(),
		FullName:       c.FullName(),
		Type:           c.ProfileType(),
		Bio:            c.Bio(),
		EducationLevel: c.EducationLevel(),
		Schedule:       c.Schedule(),
		Location:       c.Location(),
		Qualifications: quals,
		PhotoPath:      c.PhotoPath(),
		DocumentPath:   c.DocumentPath(),
		Active:         c.Active(),
		Available:      c.Available(),
		Verified:       c.Verified(),
	}
}
