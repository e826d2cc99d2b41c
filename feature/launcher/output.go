package launcher

import (
	"bytes"
	"strings"

	"go.uber.org/zap"
)

// lineWriter turns a child process output stream into one log entry per line.
type lineWriter struct {
	logger *zap.Logger
	buf    bytes.Buffer
}

func newLineWriter(logger *zap.Logger) *lineWriter {
	return &lineWriter{logger: logger}
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// partial line, keep it for the next write
			w.buf.Reset()
			w.buf.WriteString(line)
			break
		}
		w.emit(line)
	}
	return len(p), nil
}

// Flush logs any trailing partial line.
func (w *lineWriter) Flush() {
	if w.buf.Len() > 0 {
		w.emit(w.buf.String())
		w.buf.Reset()
	}
}

func (w *lineWriter) emit(line string) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return
	}
	w.logger.Info(line)
}
