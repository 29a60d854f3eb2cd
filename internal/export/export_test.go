package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/roach88/terminus/internal/record"
)

var exportedAt = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

func sampleDocument() record.Document {
	years := 82
	birth := record.Date("1958-03-14")
	doc := record.NewDocument()
	doc.LifeExpectancy = &years
	doc.BirthDate = &birth
	doc.Wills = append(doc.Wills, record.Will{
		ID:            1700000000000,
		CreatedAt:     "2023-11-14T22:13:20.000Z",
		Title:         "Main will",
		Assets:        "House & savings <all>",
		Beneficiaries: "Mei, Tom",
	})
	doc.Belongings = append(doc.Belongings, record.Belonging{
		ID:        1700000000001,
		CreatedAt: "2023-11-14T22:13:20.001Z",
		Name:      "Grandfather's watch",
		Category:  record.CategoryMementos,
		Location:  "Top drawer",
		Recipient: "Tom",
	})
	doc.Letters = append(doc.Letters, record.Letter{
		ID:        1700000000002,
		CreatedAt: "2023-11-14T22:13:20.002Z",
		Recipient: "Mei",
		Title:     "For your wedding",
		Content:   "I am **so** proud of you.\n\n<script>alert(1)</script>",
		Timing:    record.TimingSpecificDate,
		Date:      "2040-01-01",
	})
	doc.FuneralPlan = &record.FuneralPlan{FuneralType: record.FuneralTree, Atmosphere: record.AtmosphereWarm, Music: "Clair de lune"}
	doc.MedicalDirective = &record.MedicalDirective{CPR: true, FinalPlace: record.PlaceHome}
	return doc
}

func newTestBundle(t *testing.T) Bundle {
	t.Helper()
	b, err := NewBundle(sampleDocument(), exportedAt)
	require.NoError(t, err)
	return b
}

func TestNewBundle(t *testing.T) {
	doc := sampleDocument()
	b, err := NewBundle(doc, exportedAt)
	require.NoError(t, err)

	id, err := uuid.Parse(b.ExportID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.Equal(t, "2026-10-14T09:30:00.000Z", b.ExportedAt)
	assert.Equal(t, doc, b.Document)

	other, err := NewBundle(doc, exportedAt)
	require.NoError(t, err)
	assert.NotEqual(t, b.ExportID, other.ExportID)
}

func TestNewBundle_IsSnapshot(t *testing.T) {
	doc := sampleDocument()
	b, err := NewBundle(doc, exportedAt)
	require.NoError(t, err)

	doc.Wills[0].Title = "changed later"
	doc.FuneralPlan.Music = "changed later"

	assert.Equal(t, "Main will", b.Document.Wills[0].Title)
	assert.Equal(t, "Clair de lune", b.Document.FuneralPlan.Music)
}

func TestWriteJSON(t *testing.T) {
	b := newTestBundle(t)

	var buf bytes.Buffer
	require.NoError(t, b.WriteJSON(&buf))
	assert.Contains(t, buf.String(), "House & savings <all>", "HTML characters are not escaped")

	var got Bundle
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, b, got)
}

func TestWriteYAML(t *testing.T) {
	b := newTestBundle(t)

	var buf bytes.Buffer
	require.NoError(t, b.WriteYAML(&buf))

	out := buf.String()
	assert.Contains(t, out, "exportId: "+b.ExportID)
	assert.Contains(t, out, "category: mementos")
	assert.Contains(t, out, "timing: specific-date")

	var got Bundle
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, b, got)
}

func TestWriteWorkbook(t *testing.T) {
	b := newTestBundle(t)

	var buf bytes.Buffer
	require.NoError(t, b.WriteWorkbook(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetWills, SheetBelongings, SheetLetters}, f.GetSheetList())

	rows, err := f.GetRows(SheetWills)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Title", rows[0][2])
	assert.Equal(t, "1700000000000", rows[1][0])
	assert.Equal(t, "House & savings <all>", rows[1][3])

	rows, err = f.GetRows(SheetBelongings)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "mementos", rows[1][3])

	rows, err = f.GetRows(SheetLetters)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2040-01-01", rows[1][5])

	styleID, err := f.GetCellStyle(SheetWills, "A1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)
}

func TestWriteWorkbook_EmptyDocumentHasHeaders(t *testing.T) {
	b, err := NewBundle(record.NewDocument(), exportedAt)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, b.WriteWorkbook(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetLetters)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Recipient", rows[0][2])
}

func TestWriteHTML(t *testing.T) {
	b := newTestBundle(t)

	var buf bytes.Buffer
	require.NoError(t, b.WriteHTML(&buf))
	out := buf.String()

	assert.Contains(t, out, "<strong>so</strong>", "letter content is rendered as Markdown")
	assert.NotContains(t, out, "<script>alert(1)</script>", "raw HTML in letters is dropped")
	assert.Contains(t, out, "House &amp; savings &lt;all&gt;", "plain fields are escaped")
	assert.Contains(t, out, "Grandfather&#39;s watch")
	assert.Contains(t, out, "Born 1958-03-14, expected lifespan 82 years.")
	assert.Contains(t, out, "(2040-01-01)")
	assert.Contains(t, out, b.ExportID)
}

func TestWriteHTML_EmptyDocument(t *testing.T) {
	b, err := NewBundle(record.NewDocument(), exportedAt)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, b.WriteHTML(&buf))

	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, "None recorded.")+strings.Count(out, "None written."))
	assert.NotContains(t, out, "Born ")
}

func TestWrite_DispatchesByFormat(t *testing.T) {
	b := newTestBundle(t)

	for _, format := range Formats {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, b.Write(&buf, format))
			assert.NotZero(t, buf.Len())
		})
	}

	err := b.Write(&bytes.Buffer{}, "pdf")
	assert.ErrorContains(t, err, "unknown export format")
}
