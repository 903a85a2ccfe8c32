// Package contactform models the site's contact form from the visitor side:
// it holds the fields, checks the required ones and posts them to the API.
package contactform

import (
	"context"
	"errors"
	"strings"

	"github.com/xavierca1/alpha-site/internal/entity"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

var ErrMissingFields = errors.New("contactform: required fields missing")

// Fields mirrors the JSON body accepted by POST /api/contact.
type Fields struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Company         string `json:"company"`
	ServiceInterest string `json:"serviceInterest"`
	ProjectDetails  string `json:"projectDetails"`
	Budget          string `json:"budget"`
	Timeline        string `json:"timeline"`
	Currency        string `json:"currency,omitempty"`
}

// Missing lists the required fields that are blank, in form order. The policy
// is the one the API enforces on entity.Lead.
func (f Fields) Missing() []string {
	return entity.Lead{
		Name:            f.Name,
		Email:           f.Email,
		ServiceInterest: f.ServiceInterest,
		ProjectDetails:  f.ProjectDetails,
	}.MissingRequired()
}

type Submitter interface {
	Submit(ctx context.Context, fields Fields) error
}

type Form struct {
	Fields Fields
	Status Status
}

func New() *Form {
	return &Form{Status: StatusIdle}
}

// Submit sends the fields once. Missing required fields are rejected before any
// network call. A successful send clears the fields; a failed one keeps them so
// the visitor can retry.
func (f *Form) Submit(ctx context.Context, s Submitter) error {
	if missing := f.Fields.Missing(); len(missing) > 0 {
		f.Status = StatusError
		return &MissingFieldsError{Fields: missing}
	}

	if err := s.Submit(ctx, f.Fields); err != nil {
		f.Status = StatusError
		return err
	}

	f.Fields = Fields{Currency: f.Fields.Currency}
	f.Status = StatusSuccess
	return nil
}

type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return ErrMissingFields.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldsError) Unwrap() error {
	return ErrMissingFields
}
