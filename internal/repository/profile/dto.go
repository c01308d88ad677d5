package profile

import "github.com/carelinkgh/carematch/internal/domain/profile"

// patientDoc is the stored JSON shape of a patient.
type patientDoc struct {
	ID             string `json:"id"`
	FullName       string `json:"fullName"`
	Condition      string `json:"condition"`
	Years          string `json:"years"`
	Schedule       string `json:"schedule"`
	Description    string `json:"description,omitempty"`
	Special        string `json:"special,omitempty"`
	MedicalHistory string `json:"medicalHistory,omitempty"`
	Location       string `json:"location,omitempty"`
	PhotoPath      string `json:"photoPath,omitempty"`
}

func toPatientDoc(p *profile.Patient) patientDoc {
	return patientDoc{
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

func (d patientDoc) toDomain() profile.Patient {
	return profile.NewPatient(
		d.ID, d.FullName, d.Condition, d.Years, d.Schedule,
		d.Description, d.Special, d.MedicalHistory, d.Location, d.PhotoPath,
	)
}

// qualificationDoc is the stored JSON shape of a caregiver qualification.
type qualificationDoc struct {
	Title    string `json:"title"`
	FilePath string `json:"filePath,omitempty"`
}

// caregiverDoc is the stored JSON shape of a caregiver.
type caregiverDoc struct {
	ID             string             `json:"id"`
	FullName       string             `json:"fullName"`
	ProfileType    string             `json:"type"`
	Bio            string             `json:"bio,omitempty"`
	EducationLevel string             `json:"educationLevel,omitempty"`
	Schedule       string             `json:"schedule,omitempty"`
	Location       string             `json:"location,omitempty"`
	Qualifications []qualificationDoc `json:"qualifications,omitempty"`
	PhotoPath      string             `json:"photoPath,omitempty"`
	DocumentPath   string             `json:"documentPath,omitempty"`
	Active         bool               `json:"isActive"`
	Available      bool               `json:"isAvailable"`
	Verified       bool               `json:"isVerified"`
}

func toCaregiverDoc(c *profile.Caregiver) caregiverDoc {
	quals := make([]qualificationDoc, 0, len(c.Qualifications()))
	for _, q := range c.Qualifications() {
		quals = append(quals, qualificationDoc{Title: q.Title(), FilePath: q.FilePath()})
	}
	return caregiverDoc{
		ID:             c.ID(),
		FullName:       c.FullName(),
		ProfileType:    c.ProfileType(),
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

func (d caregiverDoc) toDomain() profile.Caregiver {
	var quals []profile.Qualification
	for _, q := range d.Qualifications {
		quals = append(quals, profile.NewQualification(q.Title, q.FilePath))
	}
	return profile.NewCaregiver(
		d.ID, d.FullName, d.ProfileType, d.Bio, d.EducationLevel,
		d.Schedule, d.Location, quals, d.PhotoPath, d.DocumentPath,
		d.Active, d.Available, d.Verified,
	)
}
