package content

// Subject is one of the six National Science Bee subject areas.
type Subject string

const (
	SubjectLifeScience     Subject = "Life Science"
	SubjectPhysicalScience Subject = "Physical Science"
	SubjectChemistry       Subject = "Chemistry"
	SubjectEarthSpace      Subject = "Earth & Space Science"
	SubjectEnergy          Subject = "Energy"
	SubjectMath            Subject = "Math"
)

// AllSubjects returns the subjects in display order.
func AllSubjects() []Subject {
	return []Subject{
		SubjectLifeScience,
		SubjectPhysicalScience,
		SubjectChemistry,
		SubjectEarthSpace,
		SubjectEnergy,
		SubjectMath,
	}
}

// ShortID returns the compact identifier used in content file ids.
func (s Subject) ShortID() string {
	switch s {
	case SubjectLifeScience:
		return "ls"
	case SubjectPhysicalScience:
		return "ps"
	case SubjectChemistry:
		return "ch"
	case SubjectEarthSpace:
		return "es"
	case SubjectEnergy:
		return "en"
	case SubjectMath:
		return "math"
	default:
		return ""
	}
}

// Emoji returns the icon shown next to the subject in menus.
func (s Subject) Emoji() string {
	switch s {
	case SubjectLifeScience:
		return "🧬"
	case SubjectPhysicalScience:
		return "⚛"
	case SubjectChemistry:
		return "🧪"
	case SubjectEarthSpace:
		return "🌍"
	case SubjectEnergy:
		return "⚡"
	case SubjectMath:
		return "📐"
	default:
		return ""
	}
}
