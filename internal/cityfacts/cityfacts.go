// Package cityfacts resolves canned weather reports and current local time
// for a fixed set of cities. The table is built once at construction and
// never mutated, so a Resolver is safe for concurrent use.
package cityfacts

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Record holds the facts known about a single city.
type Record struct {
	// Key is the normalized lookup identifier, see Normalize
	Key           string
	DisplayName   string
	WeatherReport string
	// TimezoneID is an IANA timezone database identifier
	TimezoneID string
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the outcome of a resolver operation. Exactly one of Report or
// ErrorMessage is set, discriminated by Status. The field names match what
// the agent runtime forwards to the model verbatim.
type Result struct {
	Status       string `json:"status"`
	Report       string `json:"report,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

func defaultRecords() []Record {
	return []Record{
		{
			Key:           "newyork",
			DisplayName:   "New York",
			WeatherReport: "The weather in New York is sunny with a temperature of 45°F.",
			TimezoneID:    "America/New_York",
		},
		{
			Key:           "london",
			DisplayName:   "London",
			WeatherReport: "It's cloudy in London with a temperature of 55°F.",
			TimezoneID:    "Europe/London",
		},
		{
			Key:           "tokyo",
			DisplayName:   "Tokyo",
			WeatherReport: "Tokyo is experiencing light rain and a temperature of 72°F.",
			TimezoneID:    "Asia/Tokyo",
		},
	}
}

// Resolver owns the read-only city table. The zero value is not usable,
// use NewResolver.
type Resolver struct {
	records      map[string]Record
	now          func() time.Time
	loadLocation func(string) (*time.Location, error)
}

type Option func(*Resolver)

// WithRecords replaces the built-in city table. Records are keyed by their
// normalized Key, later duplicates win.
func WithRecords(recs []Record) Option {
	return func(r *Resolver) {
		r.records = make(map[string]Record, len(recs))
		for _, rec := range recs {
			r.records[Normalize(rec.Key)] = rec
		}
	}
}

// WithClock overrides the wall clock. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) {
		r.now = now
	}
}

// WithLocationLoader overrides timezone database resolution. Used by tests.
func WithLocationLoader(load func(string) (*time.Location, error)) Option {
	return func(r *Resolver) {
		r.loadLocation = load
	}
}

func NewResolver(options ...Option) *Resolver {
	r := &Resolver{
		now:          time.Now,
		loadLocation: time.LoadLocation,
	}
	WithRecords(defaultRecords())(r)
	for _, o := range options {
		o(r)
	}
	return r
}

// Normalize a free-text city name into a lookup key by lowercasing and
// removing all spaces. Punctuation, accents and hyphens are left as-is,
// so 'New-York' will miss. Known limitation.
func Normalize(city string) string {
	return strings.ReplaceAll(strings.ToLower(city), " ", "")
}

// Lookup the record for a free-text city name.
func (r *Resolver) Lookup(city string) (Record, bool) {
	rec, ok := r.records[Normalize(city)]
	return rec, ok
}

// Weather returns the canned weather report for the given city. A city
// missing from the table is reported in the error variant, never as a
// Go error.
func (r *Resolver) Weather(city string) Result {
	slog.Debug("cityfacts lookup", "op", "weather", "city", city)
	rec, ok := r.Lookup(city)
	if !ok {
		return Result{
			Status:       StatusError,
			ErrorMessage: fmt.Sprintf("Sorry, I don't have weather information for '%v'.", city),
		}
	}
	return Result{Status: StatusSuccess, Report: rec.WeatherReport}
}

// CurrentTime renders the current wall-clock time of the given city in
// 24-hour HH:MM format. Timezone database failures surface in the error
// variant together with the underlying cause.
func (r *Resolver) CurrentTime(city string) Result {
	slog.Debug("cityfacts lookup", "op", "time", "city", city)
	rec, ok := r.Lookup(city)
	if !ok {
		return Result{
			Status:       StatusError,
			ErrorMessage: fmt.Sprintf("Sorry, I don't have timezone information for '%v'.", city),
		}
	}
	loc, err := r.loadLocation(rec.TimezoneID)
	if err != nil {
		return Result{
			Status:       StatusError,
			ErrorMessage: fmt.Sprintf("Could not retrieve time for '%v'. Reason: %v", city, err),
		}
	}
	now := r.now().In(loc)
	return Result{
		Status: StatusSuccess,
		Report: fmt.Sprintf("The current time in %v is %v.", rec.DisplayName, now.Format("15:04")),
	}
}
