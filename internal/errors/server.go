package errors

// TLSError reports certificate material that cannot be loaded.
type TLSError struct {
	*AppError
}

func NewTLSError(certFile, keyFile string, cause error) *TLSError {
	return &TLSError{newAppError(ExitServerError, cause, &ErrorContext{
		Operation: "Loading certificates",
		Component: "Static Server",
		Details:   []Detail{{"cer", certFile}, {"key", keyFile}},
		Suggestions: []string{
			"Check that 'cer' and 'key' point to a matching PEM pair",
			"Generate a local certificate with mkcert",
		},
	}, "Failed to load TLS certificate")}
}

// ListenError reports a listener that cannot be bound.
type ListenError struct {
	*AppError
}

func NewListenError(addr string, cause error) *ListenError {
	return &ListenError{newAppError(ExitServerError, cause, &ErrorContext{
		Operation: "Starting listener",
		Component: "Static Server",
		Details:   []Detail{{"addr", addr}},
		Suggestions: []string{
			"Check that no other process uses the port",
			"Ports below 1024 may need elevated privileges; set httpsPort/httpPort",
		},
	}, "Failed to listen on %s", addr)}
}

// GenerateError reports a validated configuration that cannot be written.
type GenerateError struct {
	*AppError
}

func NewGenerateError(path string, cause error) *GenerateError {
	return &GenerateError{newAppError(ExitIOError, cause, &ErrorContext{
		Operation: "Writing result",
		Component: "Generator",
		Details:   []Detail{{"path", path}},
		Suggestions: []string{
			"Check that the output directory is writable",
			"Choose another directory with --output",
		},
	}, "Failed to write configuration to %s", path)}
}
