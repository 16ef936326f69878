package config

const (
	defaultConfigPath       = "~/.config/plagiarism/config.toml"
	projectConfigName       = "plagiarism.toml"
	defaultEssay1           = "essays/essay1.txt"
	defaultEssay2           = "essays/essay2.txt"
	defaultReportsDir       = "reports"
	defaultReportFile       = "similarity_report.txt"
	defaultThresholdPercent = 50.0
	defaultSampleSize       = 40
	defaultLogFormat        = "console"
	defaultLogLevel         = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			Essay1:     defaultEssay1,
			Essay2:     defaultEssay2,
			ReportsDir: defaultReportsDir,
			ReportFile: defaultReportFile,
		},
		Detection: Detection{
			ThresholdPercent: defaultThresholdPercent,
			SampleSize:       defaultSampleSize,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
