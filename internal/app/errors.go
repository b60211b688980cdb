package app

// Exit codes of the generator's CLI contract, kept compatible with the
// original tool.
const (
	ExitOK         = 0
	ExitUsage      = -1
	ExitInputFile  = 1
	ExitOutputFile = 2
)

// ExitError is an error that carries a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}
