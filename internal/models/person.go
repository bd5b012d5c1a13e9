package models

import "fmt"

// Person identifies one of the two journal owners.
type Person string

const (
	PersonShubham Person = "shubham"
	PersonKhushi  Person = "khushi"
)

// Persons lists the fixed two-element set of journal owners.
var Persons = []Person{PersonShubham, PersonKhushi}

// ParsePerson validates and normalizes a person identifier.
func ParsePerson(s string) (Person, error) {
	for _, p := range Persons {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown person %q (expected %q or %q)", s, PersonShubham, PersonKhushi)
}

// Partner returns the other journal owner.
func (p Person) Partner() Person {
	if p == PersonShubham {
		return PersonKhushi
	}
	return PersonShubham
}
