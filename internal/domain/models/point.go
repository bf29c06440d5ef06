package models

import "time"

// Precision is the timestamp resolution a point was built with.
type Precision string

const (
	PrecisionS  Precision = "s"
	PrecisionMS Precision = "ms"
	PrecisionNS Precision = "ns" // ISO-8601 strings
)

// Tag is an indexed string dimension of a point.
type Tag struct {
	Key   string
	Value string
}

// Field is a point payload value. Value is int64, float64, string, bool or nil.
type Field struct {
	Key   string
	Value any
}

// Point is a single time-series record.
type Point struct {
	Measurement string
	Tags        []Tag
	Fields      []Field
	Time        time.Time
	Precision   Precision
}

// NewPoint starts a point for the given measurement.
func NewPoint(measurement string) *Point {
	return &Point{Measurement: measurement}
}

// AddTag appends a tag.
func (p *Point) AddTag(key, value string) *Point {
	p.Tags = append(p.Tags, Tag{Key: key, Value: value})
	return p
}

// AddField appends a field. Source values are normalized with FieldValue.
func (p *Point) AddField(key string, value any) *Point {
	p.Fields = append(p.Fields, Field{Key: key, Value: FieldValue(value)})
	return p
}

// SetTime sets the timestamp and its precision.
func (p *Point) SetTime(t time.Time, precision Precision) *Point {
	p.Time = t.UTC()
	p.Precision = precision
	return p
}

// Field returns the value of the named field.
func (p *Point) Field(key string) (any, bool) {
	for _, f := range p.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Tag returns the value of the named tag.
func (p *Point) Tag(key string) (string, bool) {
	for _, t := range p.Tags {
		if t.Key == key {
			return t.Value, true
		}
	}
	return "", false
}

// NonNilFields returns the fields that carry a value.
func (p *Point) NonNilFields() []Field {
	out := make([]Field, 0, len(p.Fields))
	for _, f := range p.Fields {
		if f.Value != nil {
			out = append(out, f)
		}
	}
	return out
}

// UnixSeconds returns t at second precision.
func UnixSeconds(sec int64) time.Time { return time.Unix(sec, 0).UTC() }

// UnixMillis returns t at millisecond precision.
func UnixMillis(ms int64) time.Time { return time.UnixMilli(ms).UTC() }
