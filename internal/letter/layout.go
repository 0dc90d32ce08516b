package letter

import (
	"strings"
	"time"

	"ebicsletter/internal/domain"
	"ebicsletter/internal/i18n"
	"ebicsletter/internal/util/eol"
)

const (
	fieldGap          = "        "
	beginCertificate  = "-----BEGIN CERTIFICATE-----"
	endCertificate    = "-----END CERTIFICATE-----"
	annotationLines   = 5
	signatureGapWidth = 34
)

// Content is the variant-specific part of a letter.
type Content struct {
	Title            string
	CertificateTitle string
	Certificate      []byte // nil: no certificate section
	FingerprintTitle string
	FingerprintText  string // two-line hex block, terminators included
}

type labels struct {
	date, time, hostID, bank, userID, userName, partnerID, version string
	signature, dateFormat, timeFormat                              string
}

func loadLabels(msgs *i18n.MessageSet) (labels, error) {
	var l labels
	for _, f := range []struct {
		key string
		dst *string
	}{
		{"Letter.date", &l.date},
		{"Letter.time", &l.time},
		{"Letter.hostId", &l.hostID},
		{"Letter.bank", &l.bank},
		{"Letter.userId", &l.userID},
		{"Letter.username", &l.userName},
		{"Letter.partnerId", &l.partnerID},
		{"Letter.version", &l.version},
		{"Letter.signature", &l.signature},
		{"Letter.dateFormat", &l.dateFormat},
		{"Letter.timeFormat", &l.timeFormat},
	} {
		v, err := msgs.Get(f.key)
		if err != nil {
			return labels{}, err
		}
		*f.dst = v
	}
	return l, nil
}

// Layout assembles a letter from id and c, dated now. Values are emitted
// verbatim; validating them is up to the caller.
func Layout(id domain.Identity, c Content, msgs *i18n.MessageSet, now time.Time) (*Document, error) {
	l, err := loadLabels(msgs)
	if err != nil {
		return nil, err
	}

	sections := []Section{
		{Kind: SectionTitle, Text: eol.Lines(c.Title, "", "")},
		{Kind: SectionHeader, Text: eol.Lines(
			l.date+fieldGap+now.Format(l.dateFormat),
			l.time+fieldGap+now.Format(l.timeFormat),
			l.hostID+fieldGap+id.HostID,
			l.bank+fieldGap+id.BankName,
			l.userID+fieldGap+id.UserID,
			l.userName+fieldGap+id.UserName,
			l.partnerID+fieldGap+id.PartnerID,
			l.version+fieldGap+id.SignatureVersion,
			"",
			"",
		)},
	}
	if c.Certificate != nil {
		sections = append(sections, Section{Kind: SectionCertificate, Text: certificateBlock(c.CertificateTitle, c.Certificate)})
	}
	sections = append(sections,
		Section{Kind: SectionFingerprint, Text: eol.Lines(c.FingerprintTitle, "") +
			c.FingerprintText +
			strings.Repeat(eol.Sep, annotationLines)},
		Section{Kind: SectionFooter, Text: l.date + strings.Repeat(" ", signatureGapWidth) + l.signature},
	)
	return &Document{sections: sections}, nil
}

func certificateBlock(title string, cert []byte) string {
	var b strings.Builder
	b.WriteString(eol.Lines(title, "", beginCertificate))
	b.Write(cert)
	if len(cert) > 0 && cert[len(cert)-1] != '\n' {
		b.WriteString(eol.Sep)
	}
	b.WriteString(eol.Lines(endCertificate, "", ""))
	return b.String()
}
