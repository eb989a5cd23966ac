package ports

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Success(msg string)
	Warn(msg string)
	Error(err error)
}

// LogFormatter is implemented by loggers whose output format can change at runtime.
type LogFormatter interface {
	SetJSON(enable bool)
	SetLevel(level string) error
}
