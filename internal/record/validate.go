package record

import (
	"errors"
	"fmt"
)

// Lifespan bounds accepted by LifeExpectancy.Validate.
const (
	MinLifeExpectancyYears = 1
	MaxLifeExpectancyYears = 150
)

// Validate checks the belonging's category.
func (b Belonging) Validate() error {
	if !b.Category.Valid() {
		return fmt.Errorf("belonging: invalid category %q", b.Category)
	}
	return nil
}

// Validate checks the letter's timing and, if present, its date.
func (l Letter) Validate() error {
	if !l.Timing.Valid() {
		return fmt.Errorf("letter: invalid timing %q", l.Timing)
	}
	if !l.Date.IsZero() {
		if _, err := l.Date.Time(); err != nil {
			return fmt.Errorf("letter: %w", err)
		}
	}
	if l.Timing == TimingSpecificDate && l.Date.IsZero() {
		return errors.New("letter: specific-date timing requires a date")
	}
	return nil
}

// Validate checks that the pair is complete and plausible.
func (le LifeExpectancy) Validate() error {
	if le.BirthDate.IsZero() {
		return errors.New("life expectancy: birth date is required")
	}
	if _, err := le.BirthDate.Time(); err != nil {
		return fmt.Errorf("life expectancy: %w", err)
	}
	if le.Years < MinLifeExpectancyYears || le.Years > MaxLifeExpectancyYears {
		return fmt.Errorf("life expectancy: years must be between %d and %d, got %d",
			MinLifeExpectancyYears, MaxLifeExpectancyYears, le.Years)
	}
	return nil
}

// Validate checks the plan's choice fields.
func (p FuneralPlan) Validate() error {
	if !p.FuneralType.Valid() {
		return fmt.Errorf("funeral plan: invalid funeral type %q", p.FuneralType)
	}
	if !p.Atmosphere.Valid() {
		return fmt.Errorf("funeral plan: invalid atmosphere %q", p.Atmosphere)
	}
	return nil
}

// Validate checks the directive's choice fields.
func (m MedicalDirective) Validate() error {
	if !m.TreatmentPreference.Valid() {
		return fmt.Errorf("medical directive: invalid treatment preference %q", m.TreatmentPreference)
	}
	if !m.FinalPlace.Valid() {
		return fmt.Errorf("medical directive: invalid final place %q", m.FinalPlace)
	}
	if !m.PainManagement.Valid() {
		return fmt.Errorf("medical directive: invalid pain management %q", m.PainManagement)
	}
	return nil
}
