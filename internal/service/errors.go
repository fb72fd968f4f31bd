package service

import (
	"errors"

	"appraisalapi/internal/validator"
)

// Client-facing messages for missing input.
const (
	MsgMissingProfile   = "Missing profile information"
	MsgMissingAppraisal = "Missing appraisal information"
	MsgUIDRequired      = "User ID is required"
)

// ValidationError reports incomplete caller input.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StoreError reports a failed document store or object store operation.
// Its message is the underlying error's message.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

var validate = validator.New()

// checkRequired runs the presence checks on in and maps failures to a
// ValidationError carrying msg.
func checkRequired(in any, msg string) error {
	err := validate.Validate(in)
	if err == nil {
		return nil
	}
	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		return &ValidationError{Message: msg, Fields: verr.Fields()}
	}
	return err
}
