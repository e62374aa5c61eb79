package statsapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/elibenporat/mlbbio/internal/domain/people"
)

// ErrMissingEnvelope is returned when a payload has no "people" array.
var ErrMissingEnvelope = errors.New("missing people envelope")

// DecodeError locates a failure inside the people array.
type DecodeError struct {
	Index int
	// Field is the JSON name of the offending field; empty for whole-record errors.
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("people[%d]: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("people[%d].%s: %v", e.Index, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

var errRequired = errors.New("missing required field")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Decode parses a Stats API people payload, enforcing the fields schema
// requires. Unknown fields are ignored.
func Decode(data []byte, schema people.Schema) (people.Envelope, error) {
	var env envelopeResponse
	if err := json.Unmarshal(data, &env); err != nil {
		return people.Envelope{}, fmt.Errorf("decode people envelope: %w", err)
	}
	if env.People == nil {
		return people.Envelope{}, ErrMissingEnvelope
	}

	required := schema.RequiredFields()
	out := people.Envelope{People: make([]people.Person, 0, len(*env.People))}
	for i, raw := range *env.People {
		var rec personResponse
		if err := json.Unmarshal(raw, &rec); err != nil {
			return people.Envelope{}, wrapUnmarshalError(i, err)
		}
		if err := checkRecord(i, rec, required); err != nil {
			return people.Envelope{}, err
		}
		out.People = append(out.People, mapPerson(rec))
	}
	return out, nil
}

func checkRecord(index int, rec personResponse, required []string) error {
	if err := validate.StructPartial(rec, required...); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &DecodeError{Index: index, Field: verrs[0].Field(), Err: errRequired}
		}
		return &DecodeError{Index: index, Err: err}
	}
	if err := checkSide(index, "batSide", rec.BatSide); err != nil {
		return err
	}
	return checkSide(index, "pitchHand", rec.PitchHand)
}

func checkSide(index int, name string, side *sideResponse) error {
	if side == nil {
		return nil
	}
	if side.Code == nil {
		return &DecodeError{Index: index, Field: name + ".code", Err: errRequired}
	}
	if code := people.SideCode(*side.Code); !code.Valid() {
		return &DecodeError{Index: index, Field: name + ".code", Err: fmt.Errorf("unknown side code %q, expected one of R, L, S", *side.Code)}
	}
	if side.Description == nil {
		return &DecodeError{Index: index, Field: name + ".description", Err: errRequired}
	}
	if desc := people.SideDescription(*side.Description); !desc.Valid() {
		return &DecodeError{Index: index, Field: name + ".description", Err: fmt.Errorf("unknown side description %q, expected one of Right, Left, Switch, Either", *side.Description)}
	}
	return nil
}

func wrapUnmarshalError(index int, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &DecodeError{Index: index, Field: typeErr.Field, Err: err}
	}
	return &DecodeError{Index: index, Err: err}
}
