package model

// Naming pattern placeholders understood by the synthesizer.
const (
	MethodPlaceholder = "{method}"
	SuffixPlaceholder = "{suffix}"

	// DefaultNamingPattern yields names like get_shouldSucceed.
	DefaultNamingPattern = "{method}_{suffix}"
)

// GeneratorConfig is the explicit configuration value threaded into the
// synthesizer. There is no ambient settings state; callers build one per
// run from flags and config.
type GeneratorConfig struct {
	NamingPattern    string
	FailureTests     bool // emit one failure-path test per declared failure mode
	GuidanceComments bool // append inline hints next to placeholder invocations
}

// DefaultGeneratorConfig returns the configuration used when nothing is
// overridden by flags or the config file.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		NamingPattern:    DefaultNamingPattern,
		FailureTests:     true,
		GuidanceComments: true,
	}
}
