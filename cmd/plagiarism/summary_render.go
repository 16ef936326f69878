package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"plagiarism/internal/report"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiBlue  = "\x1b[34m"
)

// renderSummary prints the console summary: headline metrics, the verdict
// and a capped sample of shared words.
func renderSummary(out io.Writer, rep report.Report, sample int, colorize bool) {
	title := "====== Plagiarism Detector Report ======"
	if colorize {
		title = ansiBlue + title + ansiReset
	}
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, renderMetrics(rep))

	verdict := rep.Verdict()
	if colorize {
		color := ansiGreen
		if rep.Likely() {
			color = ansiRed
		}
		verdict = color + verdict + ansiReset
	}
	fmt.Fprintln(out, verdict)
	fmt.Fprintln(out, strings.Repeat("-", 40))

	words := rep.Sample(sample)
	if len(words) == 0 {
		fmt.Fprintln(out, "No common meaningful words found.")
		return
	}
	fmt.Fprintln(out, "Some common words (sample):")
	fmt.Fprintln(out, strings.Join(words, ", "))
}

func renderMetrics(rep report.Report) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	tw.AppendHeader(table.Row{"Metric", "Value"})
	tw.AppendRows([]table.Row{
		{"Unique meaningful words in " + rep.LabelA, strconv.Itoa(rep.Score.UniqueA)},
		{"Unique meaningful words in " + rep.LabelB, strconv.Itoa(rep.Score.UniqueB)},
		{"Common meaningful words (count)", strconv.Itoa(rep.Score.CommonCount())},
		{"Plagiarism (Jaccard) percentage", fmt.Sprintf("%.2f%%", rep.Score.JaccardPercent)},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// renderCounts renders per-file occurrence counts for the count command.
func renderCounts(word string, labels []string, counts []int) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	tw.AppendHeader(table.Row{"File", fmt.Sprintf("Occurrences of %q", word)})
	for i, label := range labels {
		tw.AppendRow(table.Row{label, strconv.Itoa(counts[i])})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
