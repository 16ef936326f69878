package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"plagiarism/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config rooted in a unique temp directory per test.
// Essay paths point inside that directory but the files are not created
// unless WithEssays is applied.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.Essay1 = filepath.Join(base, "essays", "essay1.txt")
	cfgVal.Paths.Essay2 = filepath.Join(base, "essays", "essay2.txt")
	cfgVal.Paths.ReportsDir = filepath.Join(base, "reports")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithEssays writes both essays to the configured paths.
func WithEssays(text1, text2 string) ConfigOption {
	return func(b *configBuilder) {
		WriteEssay(b.t, b.cfg.Paths.Essay1, text1)
		WriteEssay(b.t, b.cfg.Paths.Essay2, text2)
	}
}

// WithStopWords replaces the built-in stop words on the test config.
func WithStopWords(words ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Detection.StopWords = append([]string(nil), words...)
	}
}

// WithThreshold overrides the similarity threshold on the test config.
func WithThreshold(percent float64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Detection.ThresholdPercent = percent
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.ReportsDir)
}

// WriteConfig encodes cfg as TOML next to its temp directory and returns the
// file path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	path := filepath.Join(BaseDir(cfg), "plagiarism.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
