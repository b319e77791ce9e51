package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypePolicy        ErrorType = "POLICY"
	TypeContext       ErrorType = "CONTEXT"
	TypeEvaluation    ErrorType = "EVALUATION"
	TypeAI            ErrorType = "AI"
	TypeVCS           ErrorType = "VCS"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if source, ok := e.Context["source"].(string); ok && source != "" {
			msg += fmt.Sprintf(" - %s", source)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Policy errors
var (
	ErrPolicyNotFound = NewAppError(TypePolicy, "policy source not found", nil).
				WithSuggestion("Check the path or pack name: ready-mate policy validate <ref>")

	ErrPolicyFormat = NewAppError(TypePolicy, "unsupported policy file format", nil).
			WithSuggestion("Use a .json, .yaml, .yml or .toml file, or a built-in pack name")
)

// Context errors
var (
	ErrRepoNotFound = NewAppError(TypeContext, "repository path does not exist", nil).
			WithSuggestion("Check the --path flag points to a repository root")

	ErrNotADirectory = NewAppError(TypeContext, "repository path is not a directory", nil)
)

// Configuration errors
var (
	ErrAPIKeyMissing = NewAppError(TypeConfiguration, "AI API key is missing", nil).
				WithSuggestion("Run: ready-mate config init")

	ErrTokenMissing = NewAppError(TypeConfiguration, "VCS token is missing", nil).
			WithSuggestion("Configure a GitHub token: ready-mate config init")

	ErrConfigMissing = NewAppError(TypeConfiguration, "Configuration is missing", nil).
				WithSuggestion("Initialize configuration: ready-mate config init")
)

// VCS errors
var (
	ErrRepositoryNotFound = NewAppError(TypeVCS, "repository not found", nil).
				WithSuggestion("Check repository slug and access permissions")

	ErrInvalidRepoSlug = NewAppError(TypeVCS, "invalid repository slug", nil).
				WithSuggestion("Use the owner/name form, e.g. --repo acme/widgets")
)
