package export

import (
	"time"

	"github.com/user/pwa-builder/internal/builder"
)

// Record is the serialized form of a finalized wizard result
type Record struct {
	Title          string    `json:"title" yaml:"title"`
	ShortName      string    `json:"short_name" yaml:"short_name"`
	Description    string    `json:"description,omitempty" yaml:"description,omitempty"`
	ThemeColor     string    `json:"theme_color" yaml:"theme_color"`
	Strategy       string    `json:"strategy" yaml:"strategy"`
	Behavior       string    `json:"behavior" yaml:"behavior"`
	WarnUser       bool      `json:"warn_user" yaml:"warn_user"`
	InjectRegister string    `json:"inject_register,omitempty" yaml:"inject_register,omitempty"`
	Framework      string    `json:"framework,omitempty" yaml:"framework,omitempty"`
	TypeScript     bool      `json:"typescript" yaml:"typescript"`
	Session        string    `json:"session" yaml:"session"`
	GeneratedAt    time.Time `json:"generated_at" yaml:"generated_at"`
}

// NewRecord flattens a result into its serialized form. Hidden pickers are omitted.
func NewRecord(result builder.Result) Record {
	s := result.State

	rec := Record{
		Title:          s.Title,
		ShortName:      s.ShortName,
		Description:    s.Description,
		ThemeColor:     s.ThemeColor,
		Strategy:       string(s.Strategy),
		Behavior:       string(s.Behavior),
		WarnUser:       s.WarnUser == builder.Yes,
		InjectRegister: string(result.InjectRegisterMode()),
		TypeScript:     result.GenerateTypeScript,
		Session:        result.SessionID,
		GeneratedAt:    result.CreatedAt.UTC(),
	}
	if s.ShowFrameworks() {
		rec.Framework = string(s.Framework)
	}
	return rec
}
