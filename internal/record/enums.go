package record

import (
	"fmt"
	"slices"
)

// BelongingCategory classifies an inventory entry.
type BelongingCategory string

const (
	CategoryDocuments   BelongingCategory = "documents"
	CategoryValuables   BelongingCategory = "valuables"
	CategoryMementos    BelongingCategory = "mementos"
	CategoryElectronics BelongingCategory = "electronics"
	CategoryClothing    BelongingCategory = "clothing"
	CategoryOther       BelongingCategory = "other"
)

// LetterTiming says when a letter should be delivered.
type LetterTiming string

const (
	TimingImmediate    LetterTiming = "immediate"
	TimingAfterDeath   LetterTiming = "after-death"
	TimingSpecificDate LetterTiming = "specific-date"
)

// FuneralType is the chosen form of funeral. Empty means not chosen.
type FuneralType string

const (
	FuneralBurial    FuneralType = "burial"
	FuneralCremation FuneralType = "cremation"
	FuneralTree      FuneralType = "tree"
	FuneralSea       FuneralType = "sea"
)

// Atmosphere is the desired mood of the ceremony. Empty means not chosen.
type Atmosphere string

const (
	AtmosphereSolemn      Atmosphere = "solemn"
	AtmosphereWarm        Atmosphere = "warm"
	AtmosphereCelebration Atmosphere = "celebration"
	AtmosphereSimple      Atmosphere = "simple"
)

// TreatmentPreference is the overall end-of-life treatment goal.
type TreatmentPreference string

const (
	TreatmentComfort    TreatmentPreference = "comfort"
	TreatmentBalanced   TreatmentPreference = "balanced"
	TreatmentAggressive TreatmentPreference = "aggressive"
)

// FinalPlace is where the user wishes to spend their final days.
type FinalPlace string

const (
	PlaceHospital FinalPlace = "hospital"
	PlaceHome     FinalPlace = "home"
	PlaceHospice  FinalPlace = "hospice"
)

// PainManagement is the desired level of pain relief.
type PainManagement string

const (
	PainFull     PainManagement = "full"
	PainModerate PainManagement = "moderate"
	PainMinimal  PainManagement = "minimal"
)

var (
	belongingCategories = []BelongingCategory{
		CategoryDocuments, CategoryValuables, CategoryMementos,
		CategoryElectronics, CategoryClothing, CategoryOther,
	}
	letterTimings        = []LetterTiming{TimingImmediate, TimingAfterDeath, TimingSpecificDate}
	funeralTypes         = []FuneralType{FuneralBurial, FuneralCremation, FuneralTree, FuneralSea}
	atmospheres          = []Atmosphere{AtmosphereSolemn, AtmosphereWarm, AtmosphereCelebration, AtmosphereSimple}
	treatmentPreferences = []TreatmentPreference{TreatmentComfort, TreatmentBalanced, TreatmentAggressive}
	finalPlaces          = []FinalPlace{PlaceHospital, PlaceHome, PlaceHospice}
	painManagements      = []PainManagement{PainFull, PainModerate, PainMinimal}
)

// parseEnum accepts s if it is one of all, or empty when optional is set.
func parseEnum[T ~string](kind, s string, all []T, optional bool) (T, error) {
	v := T(s)
	if (optional && s == "") || slices.Contains(all, v) {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid %s %q: must be one of %v", kind, s, all)
}

// AllBelongingCategories lists the valid categories in display order.
func AllBelongingCategories() []BelongingCategory { return slices.Clone(belongingCategories) }

// ParseBelongingCategory parses a required category.
func ParseBelongingCategory(s string) (BelongingCategory, error) {
	return parseEnum("belonging category", s, belongingCategories, false)
}

func (c BelongingCategory) Valid() bool { return slices.Contains(belongingCategories, c) }

func (c *BelongingCategory) UnmarshalText(b []byte) error {
	v, err := ParseBelongingCategory(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// AllLetterTimings lists the valid delivery timings.
func AllLetterTimings() []LetterTiming { return slices.Clone(letterTimings) }

// ParseLetterTiming parses a required letter timing.
func ParseLetterTiming(s string) (LetterTiming, error) {
	return parseEnum("letter timing", s, letterTimings, false)
}

func (t LetterTiming) Valid() bool { return slices.Contains(letterTimings, t) }

func (t *LetterTiming) UnmarshalText(b []byte) error {
	v, err := ParseLetterTiming(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// AllFuneralTypes lists the selectable funeral types.
func AllFuneralTypes() []FuneralType { return slices.Clone(funeralTypes) }

// ParseFuneralType parses an optional funeral type.
func ParseFuneralType(s string) (FuneralType, error) {
	return parseEnum("funeral type", s, funeralTypes, true)
}

func (f FuneralType) Valid() bool { return f == "" || slices.Contains(funeralTypes, f) }

func (f *FuneralType) UnmarshalText(b []byte) error {
	v, err := ParseFuneralType(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// AllAtmospheres lists the selectable ceremony atmospheres.
func AllAtmospheres() []Atmosphere { return slices.Clone(atmospheres) }

// ParseAtmosphere parses an optional atmosphere.
func ParseAtmosphere(s string) (Atmosphere, error) {
	return parseEnum("atmosphere", s, atmospheres, true)
}

func (a Atmosphere) Valid() bool { return a == "" || slices.Contains(atmospheres, a) }

func (a *Atmosphere) UnmarshalText(b []byte) error {
	v, err := ParseAtmosphere(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// AllTreatmentPreferences lists the selectable treatment goals.
func AllTreatmentPreferences() []TreatmentPreference { return slices.Clone(treatmentPreferences) }

// ParseTreatmentPreference parses an optional treatment preference.
func ParseTreatmentPreference(s string) (TreatmentPreference, error) {
	return parseEnum("treatment preference", s, treatmentPreferences, true)
}

func (p TreatmentPreference) Valid() bool { return p == "" || slices.Contains(treatmentPreferences, p) }

func (p *TreatmentPreference) UnmarshalText(b []byte) error {
	v, err := ParseTreatmentPreference(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// AllFinalPlaces lists the selectable final places.
func AllFinalPlaces() []FinalPlace { return slices.Clone(finalPlaces) }

// ParseFinalPlace parses an optional final place.
func ParseFinalPlace(s string) (FinalPlace, error) {
	return parseEnum("final place", s, finalPlaces, true)
}

func (p FinalPlace) Valid() bool { return p == "" || slices.Contains(finalPlaces, p) }

func (p *FinalPlace) UnmarshalText(b []byte) error {
	v, err := ParseFinalPlace(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// AllPainManagements lists the selectable pain-relief levels.
func AllPainManagements() []PainManagement { return slices.Clone(painManagements) }

// ParsePainManagement parses an optional pain-management level.
func ParsePainManagement(s string) (PainManagement, error) {
	return parseEnum("pain management", s, painManagements, true)
}

func (p PainManagement) Valid() bool { return p == "" || slices.Contains(painManagements, p) }

func (p *PainManagement) UnmarshalText(b []byte) error {
	v, err := ParsePainManagement(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
