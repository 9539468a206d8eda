package nolintoff

import "time"

func clock() time.Time {
	return time.Now() //nolint:ffslint // want "Use an injected clock rather than time.Now"
}
