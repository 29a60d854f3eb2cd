// Package codec converts a record.Document to and from its persisted bytes.
//
// Encoding is compact JSON with HTML escaping disabled, so persisted text is
// byte-identical to what the user typed. Decoding first checks the bytes
// against the embedded CUE schema, then decodes and backfills defaults for
// any missing keys.
package codec

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/roach88/terminus/internal/record"
)

//go:embed schema.cue
var schemaCUE string

// ErrInvalidDocument is wrapped by every Decode error caused by the data
// itself (as opposed to a broken schema).
var ErrInvalidDocument = errors.New("invalid document")

// Codec encodes and decodes documents. A Codec is not safe for concurrent use.
type Codec struct {
	cue      *cue.Context
	document cue.Value
}

// New compiles the embedded schema.
func New() (*Codec, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile document schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Document"))
	if err := def.Err(); err != nil {
		return nil, fmt.Errorf("lookup #Document: %w", err)
	}
	return &Codec{cue: ctx, document: def}, nil
}

// Encode serializes the document. Nil sequences are written as [].
func (c *Codec) Encode(doc record.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc.WithDefaults()); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	// Encoder adds a trailing newline
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Decode validates and parses persisted bytes.
func (c *Codec) Decode(data []byte) (record.Document, error) {
	if err := c.Validate(data); err != nil {
		return record.Document{}, err
	}

	var wire wireDocument
	if err := json.Unmarshal(data, &wire); err != nil {
		return record.Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	doc := record.Document{
		Wills:            wire.Wills,
		Belongings:       wire.Belongings,
		FuneralPlan:      wire.FuneralPlan,
		Letters:          wire.Letters,
		MedicalDirective: wire.MedicalDirective,
	}
	years, err := decodeYears(wire.LifeExpectancy)
	if err != nil {
		return record.Document{}, fmt.Errorf("%w: lifeExpectancy: %v", ErrInvalidDocument, err)
	}
	doc.LifeExpectancy = years
	if wire.BirthDate != nil && !wire.BirthDate.IsZero() {
		birth := *wire.BirthDate
		doc.BirthDate = &birth
	}
	return doc.WithDefaults(), nil
}

// Validate checks data against the #Document schema without decoding it.
func (c *Codec) Validate(data []byte) error {
	tree, err := parseJSON(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	v := c.cue.Encode(tree)
	if err := v.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := c.document.Unify(v).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return nil
}

// parseJSON reads data with the same rules as Decode, so any string
// encoding/json accepts (lone surrogate escapes included) reaches the schema.
// Integral numbers stay integers.
func parseJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after document")
	}
	return resolveNumbers(tree), nil
}

func resolveNumbers(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, x := range v {
			v[k] = resolveNumbers(x)
		}
	case []any:
		for i, x := range v {
			v[i] = resolveNumbers(x)
		}
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
		f, _ := v.Float64()
		return f
	}
	return v
}

type wireDocument struct {
	LifeExpectancy   json.RawMessage          `json:"lifeExpectancy"`
	BirthDate        *record.Date             `json:"birthDate"`
	Wills            []record.Will            `json:"wills"`
	Belongings       []record.Belonging       `json:"belongings"`
	FuneralPlan      *record.FuneralPlan      `json:"funeralPlan"`
	Letters          []record.Letter          `json:"letters"`
	MedicalDirective *record.MedicalDirective `json:"medicalDirective"`
}

// decodeYears accepts null, a JSON integer, or a digit string.
func decodeYears(raw json.RawMessage) (*int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		if s == "" {
			return nil, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
		return &n, nil
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, err
	}
	return &n, nil
}
