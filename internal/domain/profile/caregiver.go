package profile

// Qualification is a single caregiver qualification with an optional stored file.
type Qualification struct {
	title    string
	filePath string
}

// NewQualification creates a qualification.
func NewQualification(title, filePath string) Qualification {
	return Qualification{title: title, filePath: filePath}
}

// Title returns the qualification title.
func (q *Qualification) Title() string { return q.title }

// FilePath returns the stored relative file path.
func (q *Qualification) FilePath() string { return q.filePath }

// Caregiver is the read-only caregiver record scored during matching.
type Caregiver struct {
	id             string
	fullName       string
	profileType    string
	bio            string
	educationLevel string
	schedule       string
	location       string
	qualifications []Qualification
	photoPath      string
	documentPath   string
	active         bool
	available      bool
	verified       bool
}

// NewCaregiver creates a caregiver record.
func NewCaregiver(
	id, fullName, profileType, bio, educationLevel, schedule, location string,
	qualifications []Qualification,
	photoPath, documentPath string,
	active, available, verified bool,
) Caregiver {
	return Caregiver{
		id: id, fullName: fullName, profileType: profileType, bio: bio,
		educationLevel: educationLevel, schedule: schedule, location: location,
		qualifications: qualifications, photoPath: photoPath, documentPath: documentPath,
		active: active, available: available, verified: verified,
	}
}

// ID returns the caregiver identifier.
func (c *Caregiver) ID() string { return c.id }

// FullName returns the caregiver's full name.
func (c *Caregiver) FullName() string { return c.fullName }

// ProfileType returns the profile type/role label.
func (c *Caregiver) ProfileType() string { return c.profileType }

// Bio returns the caregiver bio.
func (c *Caregiver) Bio() string { return c.bio }

// EducationLevel returns the education level.
func (c *Caregiver) EducationLevel() string { return c.educationLevel }

// Schedule returns the availability schedule.
func (c *Caregiver) Schedule() string { return c.schedule }

// Location returns the home location.
func (c *Caregiver) Location() string { return c.location }

// Qualifications returns the ordered qualification list.
func (c *Caregiver) Qualifications() []Qualification { return c.qualifications }

// PhotoPath returns the stored relative photo path.
func (c *Caregiver) PhotoPath() string { return c.photoPath }

// DocumentPath returns the stored relative verification document path.
func (c *Caregiver) DocumentPath() string { return c.documentPath }

// Active reports whether the account is active.
func (c *Caregiver) Active() bool { return c.active }

// Available reports whether the caregiver accepts new assignments.
func (c *Caregiver) Available() bool { return c.available }

// Verified reports whether identity verification passed.
func (c *Caregiver) Verified() bool { return c.verified }

// Eligible reports whether the caregiver can enter the matching pool.
// All three gates must hold.
func (c *Caregiver) Eligible() bool { return c.active && c.available && c.verified }
