// Package letter lays out EBICS initialization letters.
//
// A letter has five sections printed in fixed order:
//
//	title        variant title, two blank lines
//	header       date, time, host ID, bank, user ID, user name, partner ID,
//	             version; each "<label>" + 8 spaces + "<value>"
//	certificate  only for certificate proofs: the bytes verbatim between
//	             BEGIN/END CERTIFICATE lines
//	fingerprint  title, blank line, two hex lines, five blank lines
//	footer       date label, signature gap, signature label
//
// Bank tooling reads letters by position, so the layout is exact down to the
// spaces. [Build] runs the whole pipeline for one [Variant]; [Layout] only
// assembles text. Neither keeps state between calls.
package letter
