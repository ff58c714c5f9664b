package config

const (
	defaultDataDir        = "~/.local/share/hansard"
	defaultLogDir         = "~/.local/share/hansard/logs"
	defaultBaseURL        = "https://sprs.parl.gov.sg/search/getHansardReport/"
	defaultRequestTimeout = 30
	defaultStartDate      = "2020-01-01"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Source: Source{
			BaseURL:        defaultBaseURL,
			RequestTimeout: defaultRequestTimeout,
		},
		Matching: Matching{
			FuzzyThreshold:  0.75,
			AmbiguityMargin: 0.05,
			ChairConfidence: 0.5,
			LearnAliases:    true,
		},
		Ingest: Ingest{
			StartDate: defaultStartDate,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
