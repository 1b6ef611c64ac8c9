package logger

// nopLogger discards everything. Used as the default in tests and when
// a component is constructed without a logger.
type nopLogger struct{}

func NewNop() ILogger {
	return nopLogger{}
}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error { return nil }
