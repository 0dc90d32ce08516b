// Package i18n resolves localized message bundles.
//
// A bundle is a directory of flat YAML files mapping message keys to text:
//
//	<bundle>/default.yaml   bundle default (English), required
//	<bundle>/<lang>.yaml    language, e.g. de.yaml
//	<bundle>/<lang>-<RR>.yaml  language and region, e.g. de-CH.yaml
//
// # Resolution
//
// [Resolve] layers the files for a locale from least to most specific:
// default, then language, then language-region. A key missing from a regional
// file is therefore inherited from the language file, and one missing from the
// language file from the default. An unsupported region resolves to the
// language, an unsupported language to the default.
//
// # Errors
//
// ErrBundleNotFound is returned when the bundle has no default file at all.
// ErrMissingKey is returned by [MessageSet.Get] for a key absent from every
// layer; the raw key is never returned in place of a message.
//
// [Logger] writes slog records whose text is looked up in a MessageSet.
//
// A resolved [MessageSet] is immutable and may be shared between goroutines.
package i18n
