// Package essay loads the documents being compared.
//
// Documents are read whole into memory as UTF-8 text. A missing document is
// reported with an error wrapping ErrMissing so callers can abort the run
// before any comparison takes place.
package essay
