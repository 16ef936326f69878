// Package main hosts the plagiarism CLI entrypoint and command graph.
//
// The Cobra-based command tree loads configuration, runs preflight checks on
// the two essays, scores their lexical overlap, prints the summary, optionally
// saves the text report and then hands the terminal to the word-search loop.
// Running the binary without a subcommand performs the comparison with the
// configured defaults.
//
// Keep this package lean: scoring, loading and report rendering live in the
// internal packages; commands here only wire them to flags and the terminal.
package main
