// Package timeutil renders stored UTC timestamps in the configured display
// timezone. Writes always persist canonical UTC; formatting happens only on
// the read path, at the API boundary.
package timeutil

import "time"

// DisplayLayout is the wall-clock format the admin UI expects.
const DisplayLayout = "2006-01-02 15:04:05"

// DefaultZone is the display timezone when none is configured (UTC+8).
const DefaultZone = "Asia/Shanghai"

// Formatter converts timestamps to display strings. The zone is an explicit
// parameter of the formatter; process-global time state is never touched.
type Formatter struct {
	loc *time.Location
}

// NewFormatter builds a Formatter for the named IANA zone. An unknown or empty
// name falls back to a fixed UTC+8 zone rather than failing, so a stripped
// container without tzdata still formats correctly.
func NewFormatter(zone string) *Formatter {
	if zone == "" {
		zone = DefaultZone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		loc = time.FixedZone("CST", 8*60*60)
	}
	return &Formatter{loc: loc}
}

// Format renders t in the display zone. The zero time renders as the empty
// string: absent values pass through rather than producing a bogus date.
func (f *Formatter) Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(f.loc).Format(DisplayLayout)
}
