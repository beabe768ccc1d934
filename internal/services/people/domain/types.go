// Package domain defines the types and interfaces for the people service
package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day carried as YYYY-MM-DD on the wire
type Date struct {
	time.Time
}

// ParseDate parses a YYYY-MM-DD string into a Date
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("must be YYYY-MM-DD: %w", err)
	}
	return Date{Time: t}, nil
}

// NewDate builds a Date from year, month, day
func NewDate(y int, m time.Month, d int) Date {
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// String renders the wire form
func (d Date) String() string { return d.Format(dateLayout) }

// MarshalJSON renders the date as a YYYY-MM-DD string
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts a YYYY-MM-DD string and nothing else
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("nascimento must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return fmt.Errorf("nascimento %w", err)
	}
	*d = parsed
	return nil
}

// Person is a stored person record
// Stacks is nil when the record has no stack, which serializes as null
type Person struct {
	ID       int64    `json:"id"`
	Nickname string   `json:"apelido"`
	Name     string   `json:"nome"`
	Born     Date     `json:"nascimento"`
	Stacks   []string `json:"stack"`
}

// CreatePersonInput is the payload accepted when creating a person
type CreatePersonInput struct {
	Nickname string   `json:"apelido" validate:"required,max=32"`
	Name     string   `json:"nome" validate:"required,max=100"`
	Born     Date     `json:"nascimento" validate:"required"`
	Stacks   []string `json:"stack" validate:"omitempty,dive,required,max=32"`
}
