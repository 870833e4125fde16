package logger

// LoggerInterface is what packages depend on; *Logger and Nop() satisfy it.
type LoggerInterface interface {
	Debug(...any)
	Info(...any)
	Warn(...any)
	Error(...any)

	Debugf(string, ...any)
	Infof(string, ...any)
	Warnf(string, ...any)
	Errorf(string, ...any)

	Debugw(string, ...any)
	Infow(string, ...any)
	Warnw(string, ...any)
	Errorw(string, ...any)

	With(...any) LoggerInterface
	SafeSync()
}
