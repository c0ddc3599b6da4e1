package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"journal_backend/internal/models"
)

const maxBodyBytes = 1 << 20

type createEntryRequest struct {
	Entry  *string `json:"entry"`
	UserID *string `json:"user_id"`
}

func (r createEntryRequest) validate() error {
	return requireFields(field{"entry", r.Entry}, field{"user_id", r.UserID})
}

type counselorRequest struct {
	UserID *string `json:"user_id"`
}

func (r counselorRequest) validate() error {
	return requireFields(field{"user_id", r.UserID})
}

type chatRequest struct {
	UserID          *string `json:"user_id"`
	Message         *string `json:"message"`
	Context         *string `json:"context"`
	InitialAnalysis *string `json:"initial_analysis"`
}

func (r chatRequest) validate() error {
	return requireFields(field{"user_id", r.UserID}, field{"message", r.Message})
}

func (r chatRequest) turn() models.ChatTurn {
	return models.ChatTurn{
		UserID:          *r.UserID,
		Message:         *r.Message,
		Context:         deref(r.Context),
		InitialAnalysis: deref(r.InitialAnalysis),
	}
}

type validator interface {
	validate() error
}

// decodeBody reads a JSON object into dst and checks its required fields.
// Every failure is a validation error.
func decodeBody[T validator](w http.ResponseWriter, r *http.Request, dst *T) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return models.ValidationError(describeDecodeError(err))
	}
	if dec.More() {
		return models.ValidationError(errors.New("request body must contain a single JSON object"))
	}
	if err := (*dst).validate(); err != nil {
		return models.ValidationError(err)
	}
	return nil
}

func describeDecodeError(err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError

	switch {
	case errors.Is(err, io.EOF):
		return errors.New("request body is empty")
	case errors.As(err, &syntaxErr):
		return fmt.Errorf("malformed JSON at offset %d", syntaxErr.Offset)
	case errors.Is(err, io.ErrUnexpectedEOF):
		return errors.New("malformed JSON")
	case errors.As(err, &typeErr):
		if typeErr.Field != "" {
			return fmt.Errorf("field %s: expected %s", typeErr.Field, typeErr.Type)
		}
		return fmt.Errorf("request body must be a JSON object, got %s", typeErr.Value)
	case errors.As(err, &maxErr):
		return fmt.Errorf("request body exceeds %d bytes", maxErr.Limit)
	default:
		return err
	}
}

type field struct {
	name  string
	value *string
}

func requireFields(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if f.value == nil {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("field required: %s", strings.Join(missing, ", "))
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
