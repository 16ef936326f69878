package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"plagiarism/internal/config"
	"plagiarism/internal/essay"
	"plagiarism/internal/logging"
	"plagiarism/internal/preflight"
	"plagiarism/internal/report"
	"plagiarism/internal/textutil"
	"plagiarism/internal/wordsearch"
)

const (
	savePromptFormat = "\nDo you want to save a full report to %s? (y/n): "
	searchPrompt     = "\nEnter a word to search (or press Enter to finish): "
)

type compareOptions struct {
	save       bool
	noSave     bool
	noSearch   bool
	jsonOutput bool
	reportPath string
	sample     int
	threshold  float64
}

func bindCompareFlags(cmd *cobra.Command, opts *compareOptions) {
	flags := cmd.Flags()
	flags.BoolVar(&opts.save, "save", false, "Save the report without asking")
	flags.BoolVar(&opts.noSave, "no-save", false, "Do not save the report and do not ask")
	flags.BoolVar(&opts.noSearch, "no-search", false, "Skip the interactive word search")
	flags.BoolVar(&opts.jsonOutput, "json", false, "Print the comparison as JSON (no prompts, no word search)")
	flags.StringVar(&opts.reportPath, "report", "", "Report file path (defaults to paths.reports_dir/paths.report_file)")
	flags.IntVar(&opts.sample, "sample", 0, "Number of shared words printed to the console (0 prints all)")
	flags.Float64Var(&opts.threshold, "threshold", report.DefaultThreshold, "Jaccard percentage flagged as likely similarity")
	cmd.MarkFlagsMutuallyExclusive("save", "no-save")
}

func newCompareCommand(ctx *commandContext) *cobra.Command {
	opts := &compareOptions{}
	cmd := &cobra.Command{
		Use:   "compare [ESSAY1 ESSAY2]",
		Short: "Compare two essays and report their shared vocabulary",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("expected zero or two essay paths, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, ctx, opts, args)
		},
	}
	bindCompareFlags(cmd, opts)
	return cmd
}

type compareSettings struct {
	paths      config.Paths
	reportPath string
	sample     int
	threshold  float64
	stopWords  textutil.StopWords
}

func resolveCompareSettings(cmd *cobra.Command, cfg *config.Config, opts *compareOptions, args []string) (compareSettings, error) {
	settings := compareSettings{
		paths:      cfg.Paths,
		reportPath: cfg.ReportPath(),
		sample:     cfg.Detection.SampleSize,
		threshold:  cfg.Detection.ThresholdPercent,
		stopWords:  cfg.StopWords(),
	}
	if len(args) == 2 {
		for i, target := range []*string{&settings.paths.Essay1, &settings.paths.Essay2} {
			expanded, err := config.ExpandPath(strings.TrimSpace(args[i]))
			if err != nil {
				return compareSettings{}, fmt.Errorf("resolve essay path: %w", err)
			}
			*target = expanded
		}
	}
	if strings.TrimSpace(opts.reportPath) != "" {
		expanded, err := config.ExpandPath(strings.TrimSpace(opts.reportPath))
		if err != nil {
			return compareSettings{}, fmt.Errorf("resolve report path: %w", err)
		}
		settings.reportPath = expanded
	}
	if cmd.Flags().Changed("sample") {
		if opts.sample < 0 {
			return compareSettings{}, errors.New("--sample must be >= 0")
		}
		settings.sample = opts.sample
	}
	if cmd.Flags().Changed("threshold") {
		if math.IsNaN(opts.threshold) || opts.threshold < 0 || opts.threshold > 100 {
			return compareSettings{}, errors.New("--threshold must be between 0 and 100")
		}
		settings.threshold = opts.threshold
	}
	return settings, nil
}

func runCompare(cmd *cobra.Command, ctx *commandContext, opts *compareOptions, args []string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	settings, err := resolveCompareSettings(cmd, cfg, opts, args)
	if err != nil {
		return err
	}

	runCtx, correlationID := logging.NewCorrelationID(cmd.Context())
	logger := logging.WithContext(runCtx, ctx.logger(cmd.ErrOrStderr(), "compare"))
	out := cmd.OutOrStdout()

	checkCfg := *cfg
	checkCfg.Paths = settings.paths
	checkCfg.Paths.ReportsDir = filepath.Dir(settings.reportPath)
	checks := preflight.RunAll(&checkCfg)
	var missing []preflight.Result
	for _, failed := range preflight.Failed(checks) {
		if failed.Name == "essay1" || failed.Name == "essay2" {
			missing = append(missing, failed)
			continue
		}
		logger.Warn("preflight check failed",
			logging.String("check", failed.Name),
			logging.String("detail", failed.Detail),
		)
	}
	if len(missing) > 0 {
		logger.Info("aborting comparison", logging.Int("missing_inputs", len(missing)))
		printMissingInputs(out, settings.paths, missing)
		return nil
	}

	a, b, err := essay.LoadPair(settings.paths.Essay1, settings.paths.Essay2)
	if err != nil {
		if errors.Is(err, essay.ErrMissing) {
			printMissingInputs(out, settings.paths, []preflight.Result{{Name: "input", Detail: err.Error()}})
			return nil
		}
		return err
	}

	normalizer := textutil.NewNormalizer(settings.stopWords)
	tokensA := normalizer.Normalize(a.Text)
	tokensB := normalizer.Normalize(b.Text)
	score := textutil.ScoreTokens(tokensA, tokensB)
	rep := report.New(a.Label, b.Label, score, settings.threshold)

	logger.Info("comparison complete",
		logging.Int("tokens_essay1", len(tokensA)),
		logging.Int("tokens_essay2", len(tokensB)),
		logging.Int("common", score.CommonCount()),
		logging.Float64("jaccard_percent", score.JaccardPercent),
	)

	if opts.jsonOutput {
		saved := ""
		if opts.save {
			if err := report.Save(settings.reportPath, rep); err != nil {
				return err
			}
			saved = settings.reportPath
		}
		return writeJSON(cmd, newCompareJSON(rep, a, b, saved, correlationID))
	}

	if rep.Empty() {
		fmt.Fprintln(out, "Both essays have no meaningful words after cleaning. Nothing to compare.")
		return nil
	}

	renderSummary(out, rep, settings.sample, shouldColorize(out))

	input := bufio.NewReader(cmd.InOrStdin())
	if shouldSave(out, input, opts, settings.reportPath) {
		if err := report.Save(settings.reportPath, rep); err != nil {
			return err
		}
		logger.Info("report saved", logging.String(logging.FieldPath, settings.reportPath))
		fmt.Fprintf(out, "Report saved to %s\n", settings.reportPath)
	}

	if !opts.noSearch {
		prompt := func() { fmt.Fprint(out, searchPrompt) }
		for query := range wordsearch.Queries(input, prompt) {
			hits := wordsearch.Count(query, a, b)
			logger.Debug("word search", logging.String("query", query))
			fmt.Fprintln(out, wordsearch.Format(query, hits))
		}
	}

	fmt.Fprintln(out, "\nDone. Thank you.")
	return nil
}

func shouldSave(out io.Writer, input *bufio.Reader, opts *compareOptions, path string) bool {
	switch {
	case opts.save:
		return true
	case opts.noSave:
		return false
	}
	fmt.Fprintf(out, savePromptFormat, path)
	return strings.ToLower(readAnswer(input)) == "y"
}

func readAnswer(input *bufio.Reader) string {
	line, err := input.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

func printMissingInputs(out io.Writer, paths config.Paths, missing []preflight.Result) {
	fmt.Fprintf(out, "ERROR: Make sure %s and %s exist.\n", paths.Essay1, paths.Essay2)
	for _, result := range missing {
		fmt.Fprintf(out, "  %s: %s\n", result.Name, result.Detail)
	}
	fmt.Fprintln(out, "Create the essays directory and add the two files, or pass both paths to `plagiarism compare`.")
}
