package people

import "fmt"

// Record is one person's entered information. Records are immutable once
// created through New; all text fields are stored trimmed.
type Record struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Age       int    `yaml:"age"`
	JobTitle  string `yaml:"job_title"`
	City      string `yaml:"city"`
	State     string `yaml:"state"`
}

// New validates the raw field values and returns the trimmed record.
func New(firstName, lastName string, age int, jobTitle, city, state string) (Record, error) {
	if err := Validate(firstName, lastName, age, jobTitle, city, state); err != nil {
		return Record{}, err
	}
	return Record{
		FirstName: trim(firstName),
		LastName:  trim(lastName),
		Age:       age,
		JobTitle:  trim(jobTitle),
		City:      trim(city),
		State:     trim(state),
	}, nil
}

// FullName returns "First Last".
func (r Record) FullName() string {
	return r.FirstName + " " + r.LastName
}

// Describe renders the fixed profile sentence used by the document export.
func (r Record) Describe() string {
	return fmt.Sprintf("%s %s, %d years old, works as a %s and lives in %s, %s.",
		r.FirstName, r.LastName, r.Age, r.JobTitle, r.City, r.State)
}
