// Package weather provides weather snapshot acquisition and storage.
package weather

import (
	"fmt"
	"time"
)

// Condition is the provider's coarse weather category. The provider defines
// the vocabulary; the values below are the ones the prediction game maps to.
type Condition string

const (
	ConditionClear  Condition = "Clear"
	ConditionClouds Condition = "Clouds"
	ConditionRain   Condition = "Rain"
)

// Snapshot is one weather observation for one city at one instant. Every
// field is always populated: Rain1h defaults to 0 when the provider omits
// precipitation, and LastUpdate is stamped at acquisition time rather than
// taken from the provider.
type Snapshot struct {
	Temperature float64   `bson:"temperature" json:"temperature"` // Celsius
	Humidity    int       `bson:"humidity" json:"humidity"`       // percent, 0-100
	WindSpeed   float64   `bson:"wind_speed" json:"wind_speed"`   // m/s
	Condition   Condition `bson:"weather_main" json:"weather_main"`
	Icon        string    `bson:"weather_icon" json:"weather_icon"`
	Rain1h      float64   `bson:"rain_1h" json:"rain_1h"` // mm over the last hour
	LastUpdate  time.Time `bson:"last_update" json:"last_update"`
}

// HistoricalRecord is one immutable history entry: a snapshot plus the city
// key it belongs to. Records are only ever inserted, and only deleted in
// bulk when a city's entire record set is removed.
type HistoricalRecord struct {
	CityKey  string   `bson:"city_name" json:"city_name"`
	Snapshot Snapshot `bson:",inline" json:"snapshot"`
}

// TransportError reports a failure to reach the weather provider: a
// connection error, a timeout, or a non-2xx HTTP status.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("weather provider transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProviderRejectedError reports a well-formed provider response whose
// payload status indicates the request was rejected, typically because the
// city was not found.
type ProviderRejectedError struct {
	Code    int
	Message string
}

func (e *ProviderRejectedError) Error() string {
	return fmt.Sprintf("weather provider rejected request (cod=%d): %s", e.Code, e.Message)
}

// MalformedResponseError reports a provider payload that is missing an
// expected field. Payload carries the raw response body for diagnostics.
type MalformedResponseError struct {
	Field   string
	Payload []byte
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("weather provider response missing field %q", e.Field)
}

// PartialWriteError reports a record-weather action where the current
// snapshot was stored but the history append failed. The current-weather
// view and the history view are inconsistent until the action is retried.
type PartialWriteError struct {
	CityKey string
	Err     error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("weather record for %q partially written: current stored, history append failed: %v", e.CityKey, e.Err)
}

func (e *PartialWriteError) Unwrap() error { return e.Err }

// PartialDeleteError reports a city deletion that did not complete. Both
// underlying deletes are idempotent, so re-invoking the deletion is safe.
type PartialDeleteError struct {
	CityKey        string
	CurrentDeleted bool
	Err            error
}

func (e *PartialDeleteError) Error() string {
	if e.CurrentDeleted {
		return fmt.Sprintf("city %q partially deleted: current record removed, history removal failed: %v", e.CityKey, e.Err)
	}
	return fmt.Sprintf("city %q not deleted: current record removal failed: %v", e.CityKey, e.Err)
}

func (e *PartialDeleteError) Unwrap() error { return e.Err }
