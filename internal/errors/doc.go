// Package errors provides the structured error type used across the character sheet.
//
// Every error carries a Code, a message and optional metadata. Three codes describe the
// file boundary of the application:
//   - LoadFailed: a character document could not be read or parsed
//   - SaveFailed: a destination could not be written
//   - ExportFailed: a PDF could not be rendered
//
// The remaining codes cover caller mistakes (InvalidArgument, NotFound,
// FailedPrecondition) and everything unexpected (Internal).
//
// # Basic Usage
//
//	if err := os.WriteFile(path, data, 0o644); err != nil {
//	    return errors.WrapWithCode(err, errors.CodeSaveFailed, "failed to write character").
//	        WithMeta("path", path)
//	}
//
// Checking:
//
//	if errors.IsLoadFailed(err) {
//	    // in-memory character is untouched
//	}
//
// At the CLI boundary, errors.UserMessage(err) gives the text to print.
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", c.Name, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
