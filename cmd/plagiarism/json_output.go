package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"plagiarism/internal/essay"
	"plagiarism/internal/report"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type compareJSON struct {
	Essay1           string   `json:"essay1"`
	Essay2           string   `json:"essay2"`
	UniqueEssay1     int      `json:"unique_essay1"`
	UniqueEssay2     int      `json:"unique_essay2"`
	CommonCount      int      `json:"common_count"`
	Common           []string `json:"common"`
	JaccardPercent   float64  `json:"jaccard_percent"`
	ThresholdPercent float64  `json:"threshold_percent"`
	Likely           bool     `json:"likely"`
	ReportPath       string   `json:"report_path,omitempty"`
	CorrelationID    string   `json:"correlation_id"`
}

func newCompareJSON(rep report.Report, a, b essay.Essay, reportPath, correlationID string) compareJSON {
	common := rep.Score.Common
	if common == nil {
		common = []string{}
	}
	return compareJSON{
		Essay1:           a.Path,
		Essay2:           b.Path,
		UniqueEssay1:     rep.Score.UniqueA,
		UniqueEssay2:     rep.Score.UniqueB,
		CommonCount:      rep.Score.CommonCount(),
		Common:           common,
		JaccardPercent:   rep.Score.JaccardPercent,
		ThresholdPercent: rep.Threshold,
		Likely:           rep.Likely(),
		ReportPath:       reportPath,
		CorrelationID:    correlationID,
	}
}
