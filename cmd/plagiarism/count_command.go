package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"plagiarism/internal/config"
	"plagiarism/internal/essay"
	"plagiarism/internal/logging"
	"plagiarism/internal/textutil"
)

type countJSON struct {
	Word   string          `json:"word"`
	Counts []countJSONFile `json:"counts"`
}

type countJSONFile struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

func newCountCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "count WORD FILE...",
		Short: "Count exact occurrences of a word in one or more files",
		Long: "Count exact occurrences of a word in one or more files.\n" +
			"Files are lowercased and stripped of ASCII punctuation before matching; stop words are counted too.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := strings.TrimSpace(args[0])
			logger := ctx.logger(cmd.ErrOrStderr(), "count")

			labels := make([]string, 0, len(args)-1)
			paths := make([]string, 0, len(args)-1)
			counts := make([]int, 0, len(args)-1)
			for _, arg := range args[1:] {
				path, err := config.ExpandPath(strings.TrimSpace(arg))
				if err != nil {
					return fmt.Errorf("resolve path: %w", err)
				}
				doc, err := essay.Load(filepath.Base(path), path)
				if err != nil {
					return err
				}
				count := textutil.CountOccurrences(word, doc.Text)
				logger.Debug("counted occurrences",
					logging.String(logging.FieldPath, path),
					logging.Int("count", count),
				)
				labels = append(labels, doc.Label)
				paths = append(paths, path)
				counts = append(counts, count)
			}

			if jsonOutput {
				payload := countJSON{Word: word, Counts: make([]countJSONFile, 0, len(paths))}
				for i, path := range paths {
					payload.Counts = append(payload.Counts, countJSONFile{Path: path, Count: counts[i]})
				}
				return writeJSON(cmd, payload)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderCounts(word, labels, counts))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print counts as JSON")
	return cmd
}
