// Code generated by hand. DO NOT EDIT.

package banned

import "time"

func generatedClock() time.Time { return time.Now() }
