// Package invariant reports programming errors: states the game logic must never
// reach, such as normalizing a zero-length axis or addressing a lane outside 0..3.
//
// Strict builds (the default) panic with a *Violation so the bug surfaces at the
// call site. Builds tagged "release" log each distinct message once and continue.
package invariant

import (
	"fmt"
	"log"
	"sync"
)

// Violation is the panic value raised by a failed check in strict builds.
type Violation struct {
	Msg string
}

func (v *Violation) Error() string {
	return "invariant violation: " + v.Msg
}

var (
	mu     sync.Mutex
	logged = make(map[string]struct{})
)

// Check fails when cond is false.
func Check(cond bool, format string, args ...any) {
	if cond {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if strict {
		panic(&Violation{Msg: msg})
	}
	Once(msg)
}

// Once logs msg the first time it is seen and drops repeats. The frame loop uses it
// for no-op paths that run every tick.
func Once(msg string) {
	mu.Lock()
	_, seen := logged[msg]
	if !seen {
		logged[msg] = struct{}{}
	}
	mu.Unlock()
	if !seen {
		log.Printf("%s", msg)
	}
}

// Strict reports whether failed checks panic.
func Strict() bool {
	return strict
}
