package record

import (
	"encoding/json"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBelongingCategory(t *testing.T) {
	for _, c := range AllBelongingCategories() {
		got, err := ParseBelongingCategory(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseBelongingCategory("")
	assert.Error(t, err, "category is required")

	_, err = ParseBelongingCategory("furniture")
	assert.ErrorContains(t, err, "furniture")
}

func TestParseOptionalEnumsAcceptEmpty(t *testing.T) {
	_, err := ParseFuneralType("")
	assert.NoError(t, err)
	_, err = ParseAtmosphere("")
	assert.NoError(t, err)
	_, err = ParseTreatmentPreference("")
	assert.NoError(t, err)
	_, err = ParseFinalPlace("")
	assert.NoError(t, err)
	_, err = ParsePainManagement("")
	assert.NoError(t, err)

	_, err = ParseFuneralType("space")
	assert.Error(t, err)
	_, err = ParseLetterTiming("")
	assert.Error(t, err, "timing is required")
}

func TestEnumDecodeRejectsUnknown(t *testing.T) {
	var b Belonging
	err := json.Unmarshal([]byte(`{"id":1,"category":"furniture"}`), &b)
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`{"id":1,"category":"mementos"}`), &b)
	require.NoError(t, err)
	assert.Equal(t, CategoryMementos, b.Category)
}

func TestEnumEncodesAsString(t *testing.T) {
	data, err := json.Marshal(Letter{ID: 7, Timing: TimingAfterDeath})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"timing":"after-death"`)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("1960-02-29")
	require.NoError(t, err)
	assert.Equal(t, Date("1960-02-29"), d)

	_, err = ParseDate("1961-02-29")
	assert.Error(t, err)
	_, err = ParseDate("29/02/1960")
	assert.Error(t, err)
}

func TestLetterValidate(t *testing.T) {
	tests := []struct {
		name    string
		letter  Letter
		wantErr bool
	}{
		{"immediate no date", Letter{Timing: TimingImmediate}, false},
		{"specific date", Letter{Timing: TimingSpecificDate, Date: "2030-01-01"}, false},
		{"specific date missing", Letter{Timing: TimingSpecificDate}, true},
		{"bad date", Letter{Timing: TimingImmediate, Date: "soon"}, true},
		{"no timing", Letter{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.letter.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLifeExpectancyValidate(t *testing.T) {
	assert.NoError(t, LifeExpectancy{BirthDate: "1970-05-01", Years: 80}.Validate())
	assert.Error(t, LifeExpectancy{Years: 80}.Validate())
	assert.Error(t, LifeExpectancy{BirthDate: "1970-05-01"}.Validate())
	assert.Error(t, LifeExpectancy{BirthDate: "1970-05-01", Years: 151}.Validate())
}

func TestFuneralAndMedicalValidate(t *testing.T) {
	assert.NoError(t, FuneralPlan{}.Validate())
	assert.NoError(t, FuneralPlan{FuneralType: FuneralSea, Atmosphere: AtmosphereWarm}.Validate())
	assert.Error(t, FuneralPlan{Atmosphere: "loud"}.Validate())

	assert.NoError(t, MedicalDirective{TreatmentPreference: TreatmentComfort}.Validate())
	assert.Error(t, MedicalDirective{FinalPlace: "moon"}.Validate())
	assert.Error(t, MedicalDirective{PainManagement: "none"}.Validate())
}

func TestNewDocumentHasEmptySequences(t *testing.T) {
	doc := NewDocument()
	assert.NotNil(t, doc.Wills)
	assert.NotNil(t, doc.Belongings)
	assert.NotNil(t, doc.Letters)
	assert.Nil(t, doc.LifeExpectancy)
	assert.Nil(t, doc.BirthDate)
	assert.Nil(t, doc.FuneralPlan)
	assert.Nil(t, doc.MedicalDirective)

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"lifeExpectancy":null,"birthDate":null,"wills":[],"belongings":[],"funeralPlan":null,"letters":[],"medicalDirective":null}`, string(data))
}

func TestCloneSharesNothing(t *testing.T) {
	years := 85
	birth := Date("1950-01-01")
	doc := NewDocument()
	doc.LifeExpectancy = &years
	doc.BirthDate = &birth
	doc.Wills = append(doc.Wills, Will{ID: 1, Title: "first"})
	doc.FuneralPlan = &FuneralPlan{Music: "Bach"}

	clone := doc.Clone()
	clone.Wills[0].Title = "changed"
	*clone.LifeExpectancy = 90
	clone.FuneralPlan.Music = "Mozart"

	assert.Equal(t, "first", doc.Wills[0].Title)
	assert.Equal(t, 85, *doc.LifeExpectancy)
	assert.Equal(t, "Bach", doc.FuneralPlan.Music)
	assert.Equal(t, doc.BirthDate, clone.BirthDate)
}

func TestMaxID(t *testing.T) {
	doc := NewDocument()
	assert.Equal(t, int64(0), doc.MaxID())

	doc.Wills = []Will{{ID: 5}}
	doc.Belongings = []Belonging{{ID: 12}, {ID: 3}}
	doc.Letters = []Letter{{ID: 9}}
	assert.Equal(t, int64(12), doc.MaxID())
}

func TestNormalizedComposesText(t *testing.T) {
	decomposed := "Rene\u0301e"
	composed := "Ren\u00e9e"
	require.NotEqual(t, decomposed, composed)

	w := Will{Title: decomposed}.Normalized()
	assert.Equal(t, composed, w.Title)

	l := Letter{Content: decomposed, Timing: TimingImmediate}.Normalized()
	assert.Equal(t, composed, l.Content)
	assert.Equal(t, TimingImmediate, l.Timing)
}

func TestNormalizedReplacesInvalidUTF8(t *testing.T) {
	w := Will{Title: "a\xffb", Assets: "ok"}.Normalized()
	assert.Equal(t, "a\uFFFDb", w.Title)
	assert.True(t, utf8.ValidString(w.Title))
	assert.Equal(t, "ok", w.Assets)

	d := MedicalDirective{Notes: "\xc3"}.Normalized()
	assert.Equal(t, "\uFFFD", d.Notes)
}
