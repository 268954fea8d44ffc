package models

import (
	"encoding/json"
	"errors"
	"time"
)

const (
	DateLayout     = "02/01/2006"
	DateTimeLayout = "02/01/2006 15:04:05"
)

var ErrInvalidDate = errors.New("invalid date format, use DD/MM/YYYY")

// Date is a calendar date carried on the JSON surface as "DD/MM/YYYY" and
// held internally as midnight of that day.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return ErrInvalidDate
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return ErrInvalidDate
	}
	d.Time = t
	return nil
}

// DateTime is a timestamp serialized as "DD/MM/YYYY HH:MM:SS".
type DateTime struct {
	time.Time
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateTimeLayout))
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return ErrInvalidDate
	}
	t, err := time.Parse(DateTimeLayout, s)
	if err != nil {
		return ErrInvalidDate
	}
	d.Time = t
	return nil
}
