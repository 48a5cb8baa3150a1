package dom

import "go.uber.org/zap"

// logger receives the "no match" diagnostics emitted by single-result
// lookups. It defaults to a nop logger; applications inject their own.
var logger = zap.NewNop()

// SetLogger replaces the package diagnostic logger. A nil argument
// restores the nop logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
