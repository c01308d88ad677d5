package matching

import (
	"strings"

	"github.com/carelinkgh/carematch/internal/domain/profile"
)

// fieldDelimiter joins the labeled fields of a profile summary.
const fieldDelimiter = " | "

// PatientText builds the labeled text summary of a patient for embedding.
// The six care fields are always emitted, empty values included, so two
// patients differing only in which fields are blank still summarize
// differently. Location is appended only when present.
func PatientText(p *profile.Patient) string {
	fields := []string{
		"condition: " + p.Condition(),
		"years: " + p.Years(),
		"schedule: " + p.Schedule(),
		"description: " + p.Description(),
		"special: " + p.Special(),
		"medicalHistory: " + p.MedicalHistory(),
	}
	if p.Location() != "" {
		fields = append(fields, "location: "+p.Location())
	}
	return strings.Join(fields, fieldDelimiter)
}

// CaregiverText builds the labeled text summary of a caregiver for embedding.
// Location and qualifications are appended only when present; qualification
// titles are joined in stored order and blank titles are skipped.
func CaregiverText(c *profile.Caregiver) string {
	fields := []string{
		"type: " + c.ProfileType(),
		"bio: " + c.Bio(),
		"educationLevel: " + c.EducationLevel(),
		"schedule: " + c.Schedule(),
	}
	if c.Location() != "" {
		fields = append(fields, "location: "+c.Location())
	}

	var titles []string
	for _, q := range c.Qualifications() {
		if q.Title() != "" {
			titles = append(titles, q.Title())
		}
	}
	if len(titles) > 0 {
		fields = append(fields, "qualifications: "+strings.Join(titles, ", "))
	}

	return strings.Join(fields, fieldDelimiter)
}
