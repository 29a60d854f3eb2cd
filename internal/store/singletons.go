package store

import (
	"context"

	"github.com/roach88/terminus/internal/record"
)

// LifeExpectancy returns the birth date / lifespan pair. ok is false unless
// both halves are set.
func (s *Store) LifeExpectancy() (le record.LifeExpectancy, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doc.BirthDate == nil || s.doc.LifeExpectancy == nil {
		return record.LifeExpectancy{}, false
	}
	return record.LifeExpectancy{BirthDate: *s.doc.BirthDate, Years: *s.doc.LifeExpectancy}, true
}

// SetLifeExpectancy stores both halves of the pair together.
func (s *Store) SetLifeExpectancy(ctx context.Context, le record.LifeExpectancy) error {
	if err := le.Validate(); err != nil {
		return invalidRecord("set life expectancy", err)
	}
	return s.commit(ctx, "set life expectancy", func(doc *record.Document) {
		birth, years := le.BirthDate, le.Years
		doc.BirthDate = &birth
		doc.LifeExpectancy = &years
	})
}

// FuneralPlan returns the funeral plan, if one was ever set.
func (s *Store) FuneralPlan() (record.FuneralPlan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doc.FuneralPlan == nil {
		return record.FuneralPlan{}, false
	}
	return *s.doc.FuneralPlan, true
}

// SetFuneralPlan replaces the funeral plan wholesale. Fields are not merged.
func (s *Store) SetFuneralPlan(ctx context.Context, plan record.FuneralPlan) error {
	if err := plan.Validate(); err != nil {
		return invalidRecord("set funeral plan", err)
	}
	plan = plan.Normalized()
	return s.commit(ctx, "set funeral plan", func(doc *record.Document) {
		doc.FuneralPlan = &plan
	})
}

// MedicalDirective returns the medical directive, if one was ever set.
func (s *Store) MedicalDirective() (record.MedicalDirective, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doc.MedicalDirective == nil {
		return record.MedicalDirective{}, false
	}
	return *s.doc.MedicalDirective, true
}

// SetMedicalDirective replaces the medical directive wholesale.
func (s *Store) SetMedicalDirective(ctx context.Context, directive record.MedicalDirective) error {
	if err := directive.Validate(); err != nil {
		return invalidRecord("set medical directive", err)
	}
	directive = directive.Normalized()
	return s.commit(ctx, "set medical directive", func(doc *record.Document) {
		doc.MedicalDirective = &directive
	})
}
