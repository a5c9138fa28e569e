package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/jalshboul/template-based-question-generation/internal/adapter"
	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "codeqg"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName   = "output"
	formatFlagName   = "format"
	seedFlagName     = "seed"
	countFlagName    = "count"
	tierFlagName     = "tier"
	parallelFlagName = "parallel"
	timeoutFlagName  = "timeout"

	outputConfigKey          = "output"
	formatConfigKey          = "format"
	generateCountKey         = "generate.count"
	generateTierKey          = "generate.tier"
	generateSeedKey          = "generate.seed"
	mixedBeginnerKey         = "mixed.beginner"
	mixedIntermediateKey     = "mixed.intermediate"
	mixedAdvancedKey         = "mixed.advanced"
	samplesDirKey            = "samples.dir"
	batchParallelKey         = "batch.parallel"
	batchCountKey            = "batch.count"
	batchTierKey             = "batch.tier"
	testTimeoutKey           = "test.timeout"
	testInterpreterKey       = "test.interpreter"
	testParallelKey          = "test.parallel"
	defaultOutputDir         = ""
	defaultGenerateCount     = 5
	defaultGenerateTier      = string(m.TierIntermediate)
	defaultGenerateSeed      = 0
	defaultMixedCount        = 2
	defaultSamplesDir        = "code_samples"
	defaultBatchParallel     = 4
	defaultBatchCount        = 6
	defaultBatchTier         = string(m.TierIntermediate)
	defaultTestTimeout       = adapter.DefaultScriptTimeout
	defaultTestInterpreter   = "python3"
	defaultTestParallel      = 1
	defaultQuizCount         = 10
	defaultDistributionInput = string(adapter.FormatCSV)

	envPrefix = "CODEQG"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".codeqg.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var defaultFormats = []string{string(adapter.FormatCSV), string(adapter.FormatJSON)}

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputConfigKey, defaultOutputDir)
	viper.SetDefault(formatConfigKey, defaultFormats)
	viper.SetDefault(generateCountKey, defaultGenerateCount)
	viper.SetDefault(generateTierKey, defaultGenerateTier)
	viper.SetDefault(generateSeedKey, defaultGenerateSeed)
	viper.SetDefault(mixedBeginnerKey, defaultMixedCount)
	viper.SetDefault(mixedIntermediateKey, defaultMixedCount)
	viper.SetDefault(mixedAdvancedKey, defaultMixedCount)
	viper.SetDefault(samplesDirKey, defaultSamplesDir)
	viper.SetDefault(batchParallelKey, defaultBatchParallel)
	viper.SetDefault(batchCountKey, defaultBatchCount)
	viper.SetDefault(batchTierKey, defaultBatchTier)
	viper.SetDefault(testTimeoutKey, int64(defaultTestTimeout.Seconds()))
	viper.SetDefault(testInterpreterKey, defaultTestInterpreter)
	viper.SetDefault(testParallelKey, defaultTestParallel)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose || viper.GetBool(logVerboseKey) {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

// testTimeout reads test.timeout as seconds.
func testTimeout() time.Duration {
	return time.Duration(viper.GetInt64(testTimeoutKey)) * time.Second
}

// configuredFormats parses the format list.
func configuredFormats() ([]adapter.Format, error) {
	names := viper.GetStringSlice(formatConfigKey)
	formats := make([]adapter.Format, 0, len(names))

	for _, name := range names {
		for _, part := range strings.Split(name, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}

			format, err := adapter.ParseFormat(strings.TrimSpace(part))
			if err != nil {
				return nil, err
			}

			formats = append(formats, format)
		}
	}

	return formats, nil
}

// documentFormat picks the first configured format able to hold a
// structured document, json when there is none.
func documentFormat(formats []adapter.Format) adapter.Format {
	for _, format := range formats {
		if format != adapter.FormatCSV {
			return format
		}
	}

	return adapter.FormatJSON
}

// artifactPath names an output file for source inside the output
// directory: <output>/<stem><suffix>.<format>. It returns "" when no output
// directory is configured.
func artifactPath(source m.Path, suffix string, format adapter.Format) m.Path {
	dir := viper.GetString(outputConfigKey)
	if strings.TrimSpace(dir) == "" {
		return ""
	}

	base := filepath.Base(string(source))
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	return m.Path(filepath.Join(dir, stem+suffix+"."+string(format)))
}
