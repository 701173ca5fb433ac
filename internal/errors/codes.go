package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"

	// Character file boundary failures
	CodeLoadFailed   Code = "LOAD_FAILED"
	CodeSaveFailed   Code = "SAVE_FAILED"
	CodeExportFailed Code = "EXPORT_FAILED"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// UserMessage returns the text shown to a person when an operation fails with this code
func (c Code) UserMessage() string {
	switch c {
	case CodeOK:
		return ""
	case CodeLoadFailed:
		return "Failed to load character."
	case CodeSaveFailed:
		return "Failed to save character."
	case CodeExportFailed:
		return "Failed to export character to PDF."
	case CodeInvalidArgument:
		return "Invalid input."
	case CodeNotFound:
		return "Not found."
	case CodeFailedPrecondition:
		return "The operation cannot be performed right now."
	default:
		return "Something went wrong."
	}
}
