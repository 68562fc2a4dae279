package errors

import (
	"errors"

	"go.uber.org/zap"
)

// Log writes err to logger at a level chosen from its status code. Domain
// errors carry their type, code and details as fields.
func Log(logger *zap.Logger, msg string, err error, fields ...zap.Field) {
	if err == nil {
		return
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		fields = append(fields,
			zap.String("error_type", string(domainErr.Type)),
			zap.String("error_code", domainErr.Code),
		)
		if len(domainErr.Details) > 0 {
			fields = append(fields, zap.Any("details", domainErr.Details))
		}
		fields = append(fields, zap.Error(err))

		switch {
		case domainErr.StatusCode >= 500:
			logger.Error(msg, fields...)
		case domainErr.StatusCode >= 400:
			logger.Warn(msg, fields...)
		default:
			logger.Info(msg, fields...)
		}
		return
	}

	if appErr := GetAppError(err); appErr != nil {
		fields = append(fields, zap.String("error_type", string(appErr.Type)))
		if appErr.Code != "" {
			fields = append(fields, zap.String("error_code", appErr.Code))
		}
		if appErr.Cause != nil {
			fields = append(fields, zap.NamedError("cause", appErr.Cause))
		}
		logger.Error(msg, append(fields, zap.String("error", appErr.Message))...)
		return
	}

	logger.Error(msg, append(fields, zap.Error(err))...)
}

// Recover converts a panic inside fn into an internal error.
func Recover(fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = NewInternalErrorf("panic: %v", rec)
		}
	}()
	return fn()
}
