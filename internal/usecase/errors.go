package usecase

import "errors"

// DomainError is a problem with the caller's input. Handlers map it to 4xx.
type DomainError struct {
	Code    string
	Message string
	Fields  []ValidationError
}

func (e *DomainError) Error() string {
	return e.Message
}

// AsDomainError finds a DomainError anywhere in err's chain.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// TechnicalError is a failure on our side or upstream. Handlers map it to 5xx.
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func AsTechnicalError(err error) (*TechnicalError, bool) {
	var te *TechnicalError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}

const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeEmailFailed = "EMAIL_FAILED"
)
