package logz

import "go.uber.org/zap"

// Log is the process-wide logger. A no-op until Init runs, so packages can
// log unconditionally in tests.
var Log = zap.NewNop()

func Init() error {
	l, err := zap.NewProduction()
	if err != nil {
		return err
	}
	Log = l
	return nil
}

func Sync() {
	_ = Log.Sync()
}
