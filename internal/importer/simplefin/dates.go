package simplefin

import (
	"fmt"
	"math"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// ISO-8601 layouts accepted for string timestamps, tried in order. The
// fractional part is optional in the first two.
var isoLayouts = []string{
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// CalendarDate truncates a SimpleFIN timestamp to a calendar date.
//
// Epoch values are interpreted in the local system timezone, matching the
// upstream export semantics: the same instant can truncate to different
// dates on machines in different zones. String values are parsed as
// ISO-8601 with an optional UTC offset; a trailing Z is rewritten to
// +00:00 first. Anything else yields ErrNotADate.
func CalendarDate(v DateValue) (civil.Date, error) {
	switch v.kind {
	case dateEpoch:
		sec, frac := math.Modf(v.epoch)
		t := time.Unix(int64(sec), int64(frac*float64(time.Second)))
		return civil.DateOf(t), nil
	case dateISO:
		s := v.iso
		if strings.HasSuffix(s, "Z") {
			s = strings.TrimSuffix(s, "Z") + "+00:00"
		}
		for _, layout := range isoLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return civil.DateOf(t), nil
			}
		}
		return civil.Date{}, fmt.Errorf("%w: %q", ErrNotADate, v.iso)
	}
	return civil.Date{}, ErrNotADate
}
