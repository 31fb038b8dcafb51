package log

import "go.uber.org/zap"

const (
	ModeProduction  = "production"
	ModeDevelopment = "debug"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// ZapConfig configures the zap logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	// FilePath enables a rotating JSON file sink next to stdout. Empty disables it.
	FilePath string
	// FileOnly drops the stdout sink when FilePath is set.
	FileOnly bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

type ctxKey struct{}
