package telemetry

import (
	"os"

	"github.com/apex/log"
	jsonhandler "github.com/apex/log/handlers/json"
)

// stdoutWriter resolves os.Stdout on every write so redirection (tests,
// process managers) is honored after package init.
type stdoutWriter struct{}

func (stdoutWriter) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

func init() {
	log.SetHandler(jsonhandler.New(stdoutWriter{}))
}

// Info writes an info-level log line with the given fields.
func Info(msg string, fields map[string]any) {
	log.WithFields(log.Fields(fields)).Info(msg)
}

// Error writes an error-level log line with the given fields.
func Error(msg string, fields map[string]any) {
	log.WithFields(log.Fields(fields)).Error(msg)
}
