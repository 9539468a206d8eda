// Code generated by hand. DO NOT EDIT.

package generated

import "time"

func generatedClock() time.Time {
	return time.Now() // want "Use an injected clock rather than time.Now"
}
