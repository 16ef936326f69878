// Package preflight provides readiness checks for the filesystem paths a
// comparison depends on.
//
// The compare command runs RunAll before reading any essay. A missing or
// unreadable input aborts the run with a diagnostic per failed check and no
// partial report. The reports directory may be absent (it is created on
// save) but, when present, must be a writable directory.
package preflight
