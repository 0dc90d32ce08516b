package letter

import (
	"io"
	"strings"

	"ebicsletter/internal/util/eol"
)

// SectionKind identifies a part of a letter.
type SectionKind int

const (
	SectionTitle SectionKind = iota
	SectionHeader
	SectionCertificate
	SectionFingerprint
	SectionFooter
)

// String returns the section name.
func (k SectionKind) String() string {
	switch k {
	case SectionTitle:
		return "title"
	case SectionHeader:
		return "header"
	case SectionCertificate:
		return "certificate"
	case SectionFingerprint:
		return "fingerprint"
	case SectionFooter:
		return "footer"
	default:
		return "unknown"
	}
}

// Section is the rendered text of one letter part, line terminators included.
type Section struct {
	Kind SectionKind
	Text string
}

// Document is a finished initialization letter.
type Document struct {
	name     string
	sections []Section
}

// Name returns the suggested file name of the letter.
func (d *Document) Name() string { return d.name }

// Sections returns the letter parts in print order.
func (d *Document) Sections() []Section {
	return append([]Section(nil), d.sections...)
}

// Section returns the part of the given kind, if the letter has one.
func (d *Document) Section(kind SectionKind) (Section, bool) {
	for _, s := range d.sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}

// String returns the full letter text.
func (d *Document) String() string {
	var b strings.Builder
	for _, s := range d.sections {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Bytes returns the full letter text as bytes.
func (d *Document) Bytes() []byte { return []byte(d.String()) }

// Lines splits the letter text at line terminators.
func (d *Document) Lines() []string { return strings.Split(d.String(), eol.Sep) }

// WriteTo writes the letter to w. Write errors are returned unchanged; a
// short write means the destination holds an incomplete letter.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}
