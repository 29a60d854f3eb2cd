package record

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalized methods return a copy with every free-text field in NFC form,
// so text typed with different input methods compares and persists identically.
// Invalid UTF-8 is replaced with U+FFFD first, as JSON encoding would do.

func nfc(s string) string { return norm.NFC.String(strings.ToValidUTF8(s, "\uFFFD")) }

func (w Will) Normalized() Will {
	w.Title = nfc(w.Title)
	w.Assets = nfc(w.Assets)
	w.Beneficiaries = nfc(w.Beneficiaries)
	w.Special = nfc(w.Special)
	return w
}

func (b Belonging) Normalized() Belonging {
	b.Name = nfc(b.Name)
	b.Location = nfc(b.Location)
	b.Recipient = nfc(b.Recipient)
	b.Description = nfc(b.Description)
	return b
}

func (l Letter) Normalized() Letter {
	l.Recipient = nfc(l.Recipient)
	l.Title = nfc(l.Title)
	l.Content = nfc(l.Content)
	return l
}

func (p FuneralPlan) Normalized() FuneralPlan {
	p.Music = nfc(p.Music)
	p.Host = nfc(p.Host)
	p.Guests = nfc(p.Guests)
	p.Dress = nfc(p.Dress)
	p.Special = nfc(p.Special)
	return p
}

func (m MedicalDirective) Normalized() MedicalDirective {
	m.HealthcareProxy = nfc(m.HealthcareProxy)
	m.ProxyContact = nfc(m.ProxyContact)
	m.Notes = nfc(m.Notes)
	return m
}
