package logging

import "github.com/goliatone/go-localize/pkg/interfaces"

// WithFields attaches structured fields to a logger when the implementation
// supports the optional FieldsLogger extension. Loggers without field support
// are returned unchanged, and nil or empty field maps skip allocation.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}

	fieldsLogger, ok := logger.(interfaces.FieldsLogger)
	if !ok {
		return logger
	}

	copied := make(map[string]any, len(fields))
	for key, value := range fields {
		copied[key] = value
	}
	return fieldsLogger.WithFields(copied)
}
