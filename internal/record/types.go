package record

import (
	"fmt"
	"slices"
	"time"
)

// DateLayout is the calendar-date layout used for birth dates and letter dates.
const DateLayout = "2006-01-02"

// TimestampLayout is the createdAt layout (millisecond ISO-8601, UTC).
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Date is an ISO calendar date (YYYY-MM-DD). The zero value means "no date".
type Date string

// ParseDate validates s as a calendar date.
func ParseDate(s string) (Date, error) {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return Date(s), nil
}

// IsZero reports whether no date is set.
func (d Date) IsZero() bool { return d == "" }

// Time returns the date as midnight UTC.
func (d Date) Time() (time.Time, error) {
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", string(d))
	}
	return t, nil
}

// Timestamp formats t the way createdAt is persisted.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Document is the single root object that is persisted as one unit.
type Document struct {
	LifeExpectancy   *int              `json:"lifeExpectancy" yaml:"lifeExpectancy"`
	BirthDate        *Date             `json:"birthDate" yaml:"birthDate"`
	Wills            []Will            `json:"wills" yaml:"wills"`
	Belongings       []Belonging       `json:"belongings" yaml:"belongings"`
	FuneralPlan      *FuneralPlan      `json:"funeralPlan" yaml:"funeralPlan"`
	Letters          []Letter          `json:"letters" yaml:"letters"`
	MedicalDirective *MedicalDirective `json:"medicalDirective" yaml:"medicalDirective"`
}

// NewDocument returns a Document with every field at its empty default.
func NewDocument() Document {
	return Document{
		Wills:      []Will{},
		Belongings: []Belonging{},
		Letters:    []Letter{},
	}
}

// WithDefaults fills nil sequences with empty ones.
func (d Document) WithDefaults() Document {
	if d.Wills == nil {
		d.Wills = []Will{}
	}
	if d.Belongings == nil {
		d.Belongings = []Belonging{}
	}
	if d.Letters == nil {
		d.Letters = []Letter{}
	}
	return d
}

// Clone returns a deep copy that shares no memory with d.
func (d Document) Clone() Document {
	out := Document{
		Wills:      slices.Clone(d.Wills),
		Belongings: slices.Clone(d.Belongings),
		Letters:    slices.Clone(d.Letters),
	}
	if d.LifeExpectancy != nil {
		years := *d.LifeExpectancy
		out.LifeExpectancy = &years
	}
	if d.BirthDate != nil {
		date := *d.BirthDate
		out.BirthDate = &date
	}
	if d.FuneralPlan != nil {
		plan := *d.FuneralPlan
		out.FuneralPlan = &plan
	}
	if d.MedicalDirective != nil {
		directive := *d.MedicalDirective
		out.MedicalDirective = &directive
	}
	return out.WithDefaults()
}

// MaxID returns the largest record ID across wills, belongings and letters.
func (d Document) MaxID() int64 {
	var highest int64
	for _, w := range d.Wills {
		highest = max(highest, w.ID)
	}
	for _, b := range d.Belongings {
		highest = max(highest, b.ID)
	}
	for _, l := range d.Letters {
		highest = max(highest, l.ID)
	}
	return highest
}

// Will is a single will entry.
type Will struct {
	ID            int64  `json:"id" yaml:"id"`
	CreatedAt     string `json:"createdAt" yaml:"createdAt"`
	Title         string `json:"title" yaml:"title"`
	Assets        string `json:"assets" yaml:"assets"`
	Beneficiaries string `json:"beneficiaries" yaml:"beneficiaries"`
	Special       string `json:"special" yaml:"special"`
}

// Belonging is a single personal-belongings inventory entry.
type Belonging struct {
	ID          int64             `json:"id" yaml:"id"`
	CreatedAt   string            `json:"createdAt" yaml:"createdAt"`
	Name        string            `json:"name" yaml:"name"`
	Category    BelongingCategory `json:"category" yaml:"category"`
	Location    string            `json:"location" yaml:"location"`
	Recipient   string            `json:"recipient" yaml:"recipient"`
	Description string            `json:"description" yaml:"description"`
}

// Letter is a farewell letter. Date only matters when Timing is TimingSpecificDate.
type Letter struct {
	ID        int64        `json:"id" yaml:"id"`
	CreatedAt string       `json:"createdAt" yaml:"createdAt"`
	Recipient string       `json:"recipient" yaml:"recipient"`
	Title     string       `json:"title" yaml:"title"`
	Content   string       `json:"content" yaml:"content"`
	Timing    LetterTiming `json:"timing" yaml:"timing"`
	Date      Date         `json:"date" yaml:"date"`
}

// FuneralPlan is the singleton funeral plan.
type FuneralPlan struct {
	FuneralType FuneralType `json:"funeralType" yaml:"funeralType"`
	Music       string      `json:"music" yaml:"music"`
	Atmosphere  Atmosphere  `json:"atmosphere" yaml:"atmosphere"`
	Host        string      `json:"host" yaml:"host"`
	Guests      string      `json:"guests" yaml:"guests"`
	Dress       string      `json:"dress" yaml:"dress"`
	Special     string      `json:"special" yaml:"special"`
}

// MedicalDirective is the singleton advance medical directive.
type MedicalDirective struct {
	CPR                 bool                `json:"cpr" yaml:"cpr"`
	Intubation          bool                `json:"intubation" yaml:"intubation"`
	FeedingTube         bool                `json:"feedingTube" yaml:"feedingTube"`
	Dialysis            bool                `json:"dialysis" yaml:"dialysis"`
	TreatmentPreference TreatmentPreference `json:"treatmentPreference" yaml:"treatmentPreference"`
	FinalPlace          FinalPlace          `json:"finalPlace" yaml:"finalPlace"`
	PainManagement      PainManagement      `json:"painManagement" yaml:"painManagement"`
	HealthcareProxy     string              `json:"healthcareProxy" yaml:"healthcareProxy"`
	ProxyContact        string              `json:"proxyContact" yaml:"proxyContact"`
	Notes               string              `json:"notes" yaml:"notes"`
}

// LifeExpectancy is the correlated birth date / expected lifespan pair.
// Both halves are set together.
type LifeExpectancy struct {
	BirthDate Date `json:"birthDate" yaml:"birthDate"`
	Years     int  `json:"lifeExpectancy" yaml:"lifeExpectancy"`
}
