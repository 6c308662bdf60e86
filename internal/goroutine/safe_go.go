package goroutine

import (
	"fmt"
	"runtime/debug"
)

// Logger — минимальный интерфейс для логирования паник.
type Logger interface {
	Errorf(format string, args ...interface{})
}

// RecoveryHandler запускает горутины с перехватом panic, чтобы фоновая
// рассылка не роняла процесс.
type RecoveryHandler struct {
	logger Logger
}

func NewRecoveryHandler(logger Logger) *RecoveryHandler {
	return &RecoveryHandler{logger: logger}
}

// SafeGo запускает fn в горутине с recovery.
func (rh *RecoveryHandler) SafeGo(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				rh.logger.Errorf("panic in goroutine: %v\nstack:\n%s", r, debug.Stack())
			}
		}()
		fn()
	}()
}

type stderrLogger struct{}

func (stderrLogger) Errorf(format string, args ...interface{}) {
	fmt.Printf("[ERROR] "+format+"\n", args...)
}

var defaultHandler = NewRecoveryHandler(stderrLogger{})

// SafeGo — упрощённый запуск безопасной горутины с дефолтным логгером.
func SafeGo(fn func()) {
	defaultHandler.SafeGo(fn)
}
