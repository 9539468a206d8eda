package disabled

import (
	"context"
	"time"
)

func clock() time.Time {
	return time.Now()
}

func background() context.Context {
	return context.TODO() // want "Pass the caller's context rather than context.TODO"
}
