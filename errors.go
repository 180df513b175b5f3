package go_vendra

import (
	"errors"
	"fmt"
)

// ValidationError indicates that a request is missing required fields or
// contains invalid data. It is returned before any remote call is attempted
// and is never retried automatically.
type ValidationError struct {
	Fields []FieldError
}

type FieldError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation error"
	}
	if len(e.Fields) == 1 {
		fe := e.Fields[0]
		if fe.Field == "" {
			return fmt.Sprintf("validation error: %s", fe.Message)
		}
		return fmt.Sprintf("validation error: %s: %s", fe.Field, fe.Message)
	}
	return fmt.Sprintf("validation error: %d fields", len(e.Fields))
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// IsValidationError checks whether err is a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// BackendError represents a transport failure or a non-2xx response from the
// Vendra backend. On create/fetch calls it is fatal to the current pipeline
// stage.
type BackendError struct {
	Op         string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *BackendError) Error() string {
	if e == nil {
		return "vendra backend error"
	}
	if e.Err != nil {
		return fmt.Sprintf("vendra backend error: %s: %v", e.Op, e.Err)
	}
	if len(e.Body) == 0 {
		return fmt.Sprintf("vendra backend error: %s: status %d", e.Op, e.StatusCode)
	}
	b := e.Body
	if len(b) > 1024 {
		b = b[:1024]
	}
	return fmt.Sprintf("vendra backend error: %s: status %d: %s", e.Op, e.StatusCode, string(b))
}

func (e *BackendError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsBackendError checks whether err is a *BackendError.
func IsBackendError(err error) bool {
	var be *BackendError
	return errors.As(err, &be)
}

// NotFoundError indicates a call against an already-gone entity.
// Deletes of deleted entities report it; callers need not escalate.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return "not found"
	}
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// IsNotFound checks whether err is a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// MissingIDError indicates a response that parsed successfully but carried no
// identifier under any recognized key. The pipeline cannot proceed without
// the id, so it is fatal.
type MissingIDError struct {
	Keys []string
}

func (e *MissingIDError) Error() string {
	if e == nil || len(e.Keys) == 0 {
		return "response contains no identifier"
	}
	return fmt.Sprintf("response contains no identifier under keys %v", e.Keys)
}

// IsMissingID checks whether err is a *MissingIDError.
func IsMissingID(err error) bool {
	var me *MissingIDError
	return errors.As(err, &me)
}
