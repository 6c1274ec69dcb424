// Package errors provides structured error types for the spirv-tables module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the table name, entry path, offending value, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConstruct, errors.KindMalformedTable).
//		Table("opcode").
//		Path("OpTypeVoid").
//		Detail("slot 0 must be a result ID").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnsupportedEnvironment(target)
//	err := errors.DuplicateCode("operand:capability", 4423, "SubgroupBallotKHR", "Other")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
