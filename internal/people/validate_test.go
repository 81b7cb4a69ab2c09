package people

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		first     string
		last      string
		age       int
		job       string
		city      string
		state     string
		wantField string // non-empty -> expect MissingFieldError on this field
		wantAge   bool   // expect InvalidAgeError
	}{
		{name: "valid", first: "Ada", last: "Lovelace", age: 36, job: "Mathematician", city: "London", state: "England"},
		{name: "age lower bound", first: "A", last: "B", age: 1, job: "C", city: "D", state: "E"},
		{name: "age upper bound", first: "A", last: "B", age: 120, job: "C", city: "D", state: "E"},
		{name: "missing first name", first: "", last: "B", age: 30, job: "C", city: "D", state: "E", wantField: "first name"},
		{name: "whitespace only last name", first: "A", last: "   ", age: 30, job: "C", city: "D", state: "E", wantField: "last name"},
		{name: "missing job title", first: "A", last: "B", age: 30, job: "\t", city: "D", state: "E", wantField: "job title"},
		{name: "missing city", first: "A", last: "B", age: 30, job: "C", city: "", state: "E", wantField: "city"},
		{name: "missing state", first: "A", last: "B", age: 30, job: "C", city: "D", state: " ", wantField: "state"},
		{name: "age zero", first: "A", last: "B", age: 0, job: "C", city: "D", state: "E", wantAge: true},
		{name: "age too high", first: "A", last: "B", age: 121, job: "C", city: "D", state: "E", wantAge: true},
		{name: "negative age", first: "A", last: "B", age: -5, job: "C", city: "D", state: "E", wantAge: true},
		// Missing fields win over a bad age: both are independent
		// preconditions but the reported kind must be stable.
		{name: "missing field with bad age", first: "", last: "B", age: 0, job: "C", city: "D", state: "E", wantField: "first name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.first, tt.last, tt.age, tt.job, tt.city, tt.state)

			switch {
			case tt.wantField != "":
				var mf *MissingFieldError
				if !errors.As(err, &mf) {
					t.Fatalf("Validate() = %v, want MissingFieldError", err)
				}
				if mf.Field != tt.wantField {
					t.Errorf("missing field = %q, want %q", mf.Field, tt.wantField)
				}
			case tt.wantAge:
				var ia *InvalidAgeError
				if !errors.As(err, &ia) {
					t.Fatalf("Validate() = %v, want InvalidAgeError", err)
				}
				if ia.Age != tt.age {
					t.Errorf("reported age = %d, want %d", ia.Age, tt.age)
				}
			default:
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
			}
		})
	}
}

func TestNewTrimsFields(t *testing.T) {
	r, err := New("  Ada ", " Lovelace", 36, " Mathematician ", " London ", " England ")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if r.FirstName != "Ada" || r.LastName != "Lovelace" || r.JobTitle != "Mathematician" ||
		r.City != "London" || r.State != "England" {
		t.Errorf("record not trimmed: %+v", r)
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	if _, err := New("Ada", "Lovelace", 500, "Mathematician", "London", "England"); err == nil {
		t.Fatal("New() accepted an invalid age")
	}
}

func TestErrorMessagesAreReadable(t *testing.T) {
	err := Validate("", "B", 30, "C", "D", "E")
	if got := err.Error(); got != "first name is required" {
		t.Errorf("message = %q", got)
	}
	err = Validate("A", "B", 200, "C", "D", "E")
	if got := err.Error(); got != "age must be between 1 and 120, got 200" {
		t.Errorf("message = %q", got)
	}
}
