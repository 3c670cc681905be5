// Package errors provides the error handling conventions for the
// character-builder project.
//
// This package provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//   - HTTP status mapping for the handler layer
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("race not found")
//	err := errors.InvalidArgumentf("invalid ability score: %d", score)
//
// Adding metadata:
//
//	err := errors.NotFound("draft not found").
//	    WithMeta("draft_id", draftID).
//	    WithMeta("player_id", playerID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to get draft")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateRange("score", score, 3, 18, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound, AlreadyExists)
//   - Include relevant IDs in metadata
//   - Wrap storage errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Check preconditions and return FailedPrecondition errors
//   - Wrap repository errors with business context
//
// Handler layer:
//   - Map codes to HTTP statuses via Code.HTTPStatus
//   - Extract user-friendly messages
//   - Log internal errors for debugging
//
// # Error Codes
//
// The following error codes are available:
//   - NotFound: Resource not found (unknown race, class, item, spell, draft)
//   - InvalidArgument: Invalid input provided (a wizard step rule violation)
//   - AlreadyExists: Resource already exists
//   - FailedPrecondition: Operation requirements not met (bad engine
//     configuration, finalizing an incomplete draft)
//   - OutOfRange: Value out of valid range
//   - Internal: Internal invariant violation (e.g. sheet rendering of a
//     malformed record)
//   - Unavailable: Storage temporarily unavailable
//   - Unimplemented: Feature not implemented
package errors
