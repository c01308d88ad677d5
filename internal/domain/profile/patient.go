package profile

// Patient is the read-only patient record used as a matching query.
// The location comes from the owning user account, not the patient record itself.
type Patient struct {
	id             string
	fullName       string
	condition      string
	years          string
	schedule       string
	description    string
	special        string
	medicalHistory string
	location       string
	photoPath      string
}

// NewPatient creates a patient record.
func NewPatient(
	id, fullName, condition, years, schedule string,
	description, special, medicalHistory, location, photoPath string,
) Patient {
	return Patient{
		id: id, fullName: fullName, condition: condition, years: years,
		schedule: schedule, description: description, special: special,
		medicalHistory: medicalHistory, location: location, photoPath: photoPath,
	}
}

// ID returns the patient identifier.
func (p *Patient) ID() string { return p.id }

// FullName returns the patient's full name.
func (p *Patient) FullName() string { return p.fullName }

// Condition returns the primary condition.
func (p *Patient) Condition() string { return p.condition }

// Years returns the time lived with the condition.
func (p *Patient) Years() string { return p.years }

// Schedule returns the required care schedule.
func (p *Patient) Schedule() string { return p.schedule }

// Description returns the free-text description.
func (p *Patient) Description() string { return p.description }

// Special returns the special-needs notes.
func (p *Patient) Special() string { return p.special }

// MedicalHistory returns the medical history notes.
func (p *Patient) MedicalHistory() string { return p.medicalHistory }

// Location returns the home location.
func (p *Patient) Location() string { return p.location }

// PhotoPath returns the stored relative photo path.
func (p *Patient) PhotoPath() string { return p.photoPath }
