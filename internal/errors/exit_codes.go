package errors

// ExitCode is the process status reported by the CLI.
type ExitCode int

const (
	ExitSuccess      ExitCode = 0
	ExitGeneralError ExitCode = 1
	// ExitConfigError covers unreadable or invalid settings files.
	ExitConfigError ExitCode = 2
	// ExitValidationError covers missing certificates and static roots.
	ExitValidationError ExitCode = 3
	// ExitIOError is returned when a generated configuration cannot be written.
	ExitIOError ExitCode = 4
	// ExitServerError covers TLS and listener failures of the static server.
	ExitServerError ExitCode = 5
)

func (e ExitCode) Int() int {
	return int(e)
}
