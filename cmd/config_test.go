package cmd

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "testsmith", configBaseName)
	assert.Equal(t, "testsmith.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "exclude", excludeFlagName)
	assert.Equal(t, "parallel", parallelFlagName)
	assert.Equal(t, "pattern", patternFlagName)
	assert.Equal(t, "test-root", testRootFlagName)
	assert.Equal(t, "failure-tests", failureTestsFlagName)
	assert.Equal(t, "hints", hintsFlagName)
	assert.Equal(t, "paths.exclude", excludeConfigKey)
	assert.Equal(t, "scan.parallel", scanParallelConfigKey)
	assert.Equal(t, "generator.naming_pattern", namingPatternKey)
	assert.Equal(t, "generator.failure_tests", failureTestsKey)
	assert.Equal(t, "generator.guidance_comments", guidanceCommentsKey)
	assert.Equal(t, "generator.test_root", testRootKey)
	assert.Equal(t, ".testsmith-reports", defaultReportsDir)
	assert.Equal(t, 4, defaultScanParallel)
	assert.Equal(t, "TESTSMITH", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty uses default", "", slog.LevelWarn},
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"warning alias", "warning", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"case insensitive", "DEBUG", slog.LevelDebug},
		{"numeric", "-4", slog.LevelDebug},
		{"garbage uses default", "loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestGeneratorConfigDefaults(t *testing.T) {
	cfg := generatorConfig()

	assert.Equal(t, "{method}_{suffix}", cfg.NamingPattern)
	assert.True(t, cfg.FailureTests)
	assert.True(t, cfg.GuidanceComments)
}
