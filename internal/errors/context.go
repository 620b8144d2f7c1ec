package errors

import (
	"fmt"
	"strings"
)

// Detail is one labelled value listed under "Details".
type Detail struct {
	Key   string
	Value any
}

// ErrorContext explains an AppError to the person running the command.
type ErrorContext struct {
	Operation   string
	Component   string
	Details     []Detail // printed in order
	Suggestions []string
}

// Format renders the context as the indented blocks appended to the user
// message.
func (ec *ErrorContext) Format() string {
	var sb strings.Builder

	if line := ec.summary(); line != "" {
		fmt.Fprintf(&sb, "\nWhat happened:\n  %s\n", line)
	}

	if len(ec.Details) > 0 {
		sb.WriteString("\nDetails:\n")
		for _, d := range ec.Details {
			fmt.Fprintf(&sb, "  - %s: %v\n", d.Key, d.Value)
		}
	}

	if len(ec.Suggestions) > 0 {
		sb.WriteString("\nWhat you can do:\n")
		for i, s := range ec.Suggestions {
			fmt.Fprintf(&sb, "  %d. %s\n", i+1, s)
		}
	}

	return sb.String()
}

func (ec *ErrorContext) summary() string {
	switch {
	case ec.Operation != "" && ec.Component != "":
		return fmt.Sprintf("%s failed in %s.", ec.Operation, ec.Component)
	case ec.Operation != "":
		return ec.Operation + " failed."
	case ec.Component != "":
		return "Failure in " + ec.Component + "."
	}
	return ""
}
