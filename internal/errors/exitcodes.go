package errors

const (
	// ExitCodeSuccess indicates successful execution. Per-subscription
	// failures during a scan are logged, not propagated, so a partially
	// failing run still exits with this code.
	ExitCodeSuccess = 0

	// ExitCodeRuntime indicates a general runtime error
	ExitCodeRuntime = 1

	// ExitCodeValidation indicates a usage/validation error (follows bash convention)
	ExitCodeValidation = 2
)

// ExitCodeFor maps an error type to its process exit code.
func ExitCodeFor(t ErrorType) int {
	if t == ErrorTypeValidation {
		return ExitCodeValidation
	}
	return ExitCodeRuntime
}
