package core

// Logger receives progress and statistics output from the renderer
type Logger interface {
	Printf(format string, args ...interface{})
}
