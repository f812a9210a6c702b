// Package provider holds the types shared by the external data adapters:
// the Outcome result of a safe call, circuit breaker construction and
// the call counters.
package provider

import (
	"time"

	"github.com/goccy/go-json"
)

// Outcome is the result of an adapter call that never fails. Either Value
// holds real data, or Placeholder holds a human-readable message explaining
// why the data is unavailable.
type Outcome[T any] struct {
	Value       T
	Placeholder string
}

// Ok wraps real data.
func Ok[T any](v T) Outcome[T] {
	return Outcome[T]{Value: v}
}

// Unavailable wraps a placeholder message.
func Unavailable[T any](msg string) Outcome[T] {
	return Outcome[T]{Placeholder: msg}
}

// Available reports whether the outcome carries real data.
func (o Outcome[T]) Available() bool {
	return o.Placeholder == ""
}

// Map converts the value of an available outcome and keeps the placeholder
// of an unavailable one.
func Map[T, U any](o Outcome[T], fn func(T) U) Outcome[U] {
	if !o.Available() {
		return Unavailable[U](o.Placeholder)
	}
	return Ok(fn(o.Value))
}

type placeholderJSON struct {
	Message string `json:"message"`
}

// MarshalJSON renders the value, or {"message": placeholder} when unavailable.
func (o Outcome[T]) MarshalJSON() ([]byte, error) {
	if !o.Available() {
		return json.Marshal(placeholderJSON{Message: o.Placeholder})
	}
	return json.Marshal(o.Value)
}

// ItineraryRequest describes the trip an itinerary is written for.
type ItineraryRequest struct {
	City      string
	Country   string
	Interests string
	Start     time.Time
	End       time.Time
	Days      int
}
