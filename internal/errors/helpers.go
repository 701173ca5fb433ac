package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// GetMessage extracts the message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// UserMessage converts an error into the text shown at the CLI boundary.
// Input problems surface their own message; I/O failures use the fixed text for their code.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	code := GetCode(err)
	switch code {
	case CodeInvalidArgument, CodeFailedPrecondition, CodeNotFound:
		return GetMessage(err)
	default:
		return code.UserMessage()
	}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsLoadFailed checks if an error is a load failure
func IsLoadFailed(err error) bool {
	return GetCode(err) == CodeLoadFailed
}

// IsSaveFailed checks if an error is a save failure
func IsSaveFailed(err error) bool {
	return GetCode(err) == CodeSaveFailed
}

// IsExportFailed checks if an error is an export failure
func IsExportFailed(err error) bool {
	return GetCode(err) == CodeExportFailed
}
