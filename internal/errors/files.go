package errors

// MissingFileError reports a file named in the settings that does not exist.
type MissingFileError struct {
	*AppError
}

func NewMissingFileError(filePath, purpose string) *MissingFileError {
	return &MissingFileError{newAppError(ExitValidationError, nil, &ErrorContext{
		Operation: "File Validation",
		Component: "Filesystem",
		Details:   []Detail{{"file_path", filePath}, {"purpose", purpose}},
		Suggestions: []string{
			"Check that the file exists",
			"Verify the path in .env.local.json is correct",
		},
	}, "Required file not found: %s", filePath)}
}

// InvalidPathError reports a path that exists but cannot be used, such as a
// static root that is not a directory.
type InvalidPathError struct {
	*AppError
}

func NewInvalidPathError(path string, reason string) *InvalidPathError {
	return &InvalidPathError{newAppError(ExitValidationError, nil, &ErrorContext{
		Operation: "Path Validation",
		Component: "Filesystem",
		Details:   []Detail{{"path", path}, {"reason", reason}},
		Suggestions: []string{
			"Build the site first so the static root exists",
			"Point --root at a directory",
		},
	}, "Invalid path: %s", path)}
}
