package config

type Config struct {
	ConfigVersion int            `yaml:"configVersion"`
	Server        ServerConfig   `yaml:"server"`
	Limits        Limits         `yaml:"limits"`
	Analysis      AnalysisConfig `yaml:"analysis"`
	Logging       LoggingConfig  `yaml:"logging"`
	Metrics       MetricsConfig  `yaml:"metrics"`
	Rules         []Rule         `yaml:"rules"`

	baseDir string `yaml:"-"`
}

type ServerConfig struct {
	Listen string `yaml:"listen"`
}

type Limits struct {
	MaxUploadBytes int64 `yaml:"maxUploadBytes"`
}

type AnalysisConfig struct {
	// LegitThreshold is the strict lower bound for a legit verdict: an
	// analysis is legit only when its score exceeds the threshold.
	LegitThreshold int `yaml:"legitThreshold"`
}

type LoggingConfig struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"`
	AnalysisLog string `yaml:"analysisLog"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen"`
}

// Rule is an operator-supplied detection rule appended after the built-in
// scam pattern table.
type Rule struct {
	ID          string    `yaml:"id"`
	Weight      int       `yaml:"weight"`
	Description string    `yaml:"description"`
	Match       RuleMatch `yaml:"match"`
}

type RuleMatch struct {
	Type     string   `yaml:"type"`
	Pattern  string   `yaml:"pattern"`
	Keywords []string `yaml:"keywords"`
}

const (
	MatchRegex   = "regex"
	MatchKeyword = "keyword"
)

func Default() *Config {
	return &Config{
		ConfigVersion: 1,
		Server:        ServerConfig{Listen: ":5001"},
		Limits:        Limits{MaxUploadBytes: 10 << 20},
		Analysis:      AnalysisConfig{LegitThreshold: 70},
		Logging:       LoggingConfig{Level: "info", Format: "console"},
		Metrics:       MetricsConfig{Enabled: false, Listen: ":9102"},
	}
}

func (c *Config) BaseDir() string {
	return c.baseDir
}

func (c *Config) ResolvePath(path string) string {
	return c.resolvePath(path)
}
