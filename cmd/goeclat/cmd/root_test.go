package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetConfigFile(t *testing.T) {
	// Save original value and restore after test
	originalCfgFile := cfgFile
	defer func() {
		cfgFile = originalCfgFile
	}()

	tests := []struct {
		name     string
		cfgValue string
		want     string
	}{
		{
			name:     "default config file",
			cfgValue: "",
			want:     "",
		},
		{
			name:     "custom config file",
			cfgValue: "/path/to/custom.yaml",
			want:     "/path/to/custom.yaml",
		},
		{
			name:     "config file with spaces",
			cfgValue: "/path/to/my config.yaml",
			want:     "/path/to/my config.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgFile = tt.cfgValue
			got := GetConfigFile()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetCLIOverrides(t *testing.T) {
	// Save original values and restore after test
	originalLogLevel := logLevel
	originalLogFormat := logFormat
	originalMinSupport := minSupport
	originalMinSupportIsCount := minSupportIsCount
	originalMaxClasses := maxClasses
	originalNoColor := noColor
	defer func() {
		logLevel = originalLogLevel
		logFormat = originalLogFormat
		minSupport = originalMinSupport
		minSupportIsCount = originalMinSupportIsCount
		maxClasses = originalMaxClasses
		noColor = originalNoColor
	}()

	tests := []struct {
		name              string
		logLevel          string
		logFormat         string
		minSupport        float64
		minSupportIsCount bool
		maxClasses        int
		noColor           bool
		want              CLIOverrides
	}{
		{
			name: "empty overrides",
			want: CLIOverrides{},
		},
		{
			name:              "all overrides set",
			logLevel:          "debug",
			logFormat:         "text",
			minSupport:        0.25,
			minSupportIsCount: false,
			maxClasses:        1000,
			noColor:           true,
			want: CLIOverrides{
				LogLevel:   "debug",
				LogFormat:  "text",
				MinSupport: 0.25,
				MaxClasses: 1000,
				NoColor:    true,
			},
		},
		{
			name:              "absolute min support",
			minSupport:        25,
			minSupportIsCount: true,
			want: CLIOverrides{
				MinSupport:        25,
				MinSupportIsCount: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logLevel = tt.logLevel
			logFormat = tt.logFormat
			minSupport = tt.minSupport
			minSupportIsCount = tt.minSupportIsCount
			maxClasses = tt.maxClasses
			noColor = tt.noColor

			got := GetCLIOverrides()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRootCommandStructure(t *testing.T) {
	assert.NotNil(t, rootCmd)
	assert.Equal(t, "goeclat", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.Equal(t, Version, rootCmd.Version)
}

func TestRootCommandPersistentFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	// Test config flag
	configFlag, err := flags.GetString("config")
	assert.NoError(t, err)
	assert.Equal(t, "goeclat.yaml", configFlag)

	// Test log-level flag
	logLevelFlag, err := flags.GetString("log-level")
	assert.NoError(t, err)
	assert.Equal(t, "", logLevelFlag)

	// Test log-format flag
	logFormatFlag, err := flags.GetString("log-format")
	assert.NoError(t, err)
	assert.Equal(t, "", logFormatFlag)

	// Test min-support flag
	minSupportFlag, err := flags.GetFloat64("min-support")
	assert.NoError(t, err)
	assert.Equal(t, float64(0), minSupportFlag)

	// Test absolute flag
	absoluteFlag, err := flags.GetBool("absolute")
	assert.NoError(t, err)
	assert.Equal(t, false, absoluteFlag)

	// Test max-classes flag
	maxClassesFlag, err := flags.GetInt("max-classes")
	assert.NoError(t, err)
	assert.Equal(t, 0, maxClassesFlag)

	// Test no-color flag
	noColorFlag, err := flags.GetBool("no-color")
	assert.NoError(t, err)
	assert.Equal(t, false, noColorFlag)
}

func TestRootCommandSubcommands(t *testing.T) {
	commands := rootCmd.Commands()
	commandNames := make([]string, len(commands))
	for i, cmd := range commands {
		commandNames[i] = cmd.Name()
	}

	expectedCommands := []string{
		"mine",
		"stats",
		"list-datasets",
		"validate",
		"version",
	}

	for _, expected := range expectedCommands {
		assert.Contains(t, commandNames, expected, "Expected command %s not found", expected)
	}
}
