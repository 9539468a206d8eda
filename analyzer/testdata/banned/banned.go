package banned

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"
)

type guarded struct { // want "Type guarded must not embed sync.Mutex"
	sync.Mutex
	n int
}

type wrapper struct{ *guarded } // want "Type wrapper must not embed sync.Mutex"

type explicit struct {
	mu sync.Mutex
	n  int
}

var cache sync.Map // want "Use a typed map guarded by a mutex rather than sync.Map"

func load(key string) (any, bool) {
	return cache.Load(key)
}

func clock() time.Time {
	return time.Now() // want "Use an injected clock rather than time.Now"
}

func clockValue() func() time.Time {
	return time.Now // want "Use an injected clock rather than time.Now"
}

func background() context.Context {
	return context.TODO() // want "Pass the caller's context rather than context.TODO"
}

func fetch(url string) error {
	resp, err := http.Get(url) // want "Use an http.Client with a timeout rather than http.Get"
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	head, err := http.DefaultClient.Head(url) // want "Use an http.Client with a timeout rather than http.DefaultClient"
	if err != nil {
		return err
	}

	return head.Body.Close()
}

func files(dir string) error {
	if err := os.MkdirAll(dir, 0o777); err != nil { // want "Do not create world-writable directories with os.MkdirAll"
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	return os.WriteFile(dir+"/f", nil, 0666) // want "Do not create world-writable files with os.WriteFile"
}

func format(name string) (string, error) {
	s := fmt.Sprintf("static") // want "Use the format string directly rather than fmt.Sprintf without arguments"
	t := fmt.Sprintf("%s", name)
	u := fmt.Sprintf(pair(name))

	return s + t + u, fmt.Errorf("failed") // want "Use errors.New rather than fmt.Errorf without arguments"
}

func pair(name string) (string, any) {
	return "%s", name
}

func suppressed() {
	_ = time.Now() //nolint:ffslint // the clock is injected elsewhere
	_ = time.Now() //nolint:ffs1001 // the clock is injected elsewhere
	_ = time.Now() //nolint:errcheck // want "Use an injected clock rather than time.Now"
	_ = time.Now() //nolint:FFS1001 // TODO: inject // want "nolint directive must not have a pending justification"
	_ = time.Now() /* want "nolint directive must specify a justification" */ //nolint
	_ = time.Now() /* want "nolint directive must specify a justification" */ //nolint:ffslint
}

// injected returns the clock of the test environment.
//
//nolint:ffslint // tests only
func injected() time.Time {
	return time.Now()
}

// partial only suppresses the context rule.
//
//nolint:FFS1002 // background work
func partial() (context.Context, time.Time) {
	return context.TODO(), time.Now() // want "Use an injected clock rather than time.Now"
}

func uses(g guarded, w wrapper, e explicit) int {
	return g.n + w.n + e.n
}
