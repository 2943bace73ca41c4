package art

import (
	"fmt"
	"os"
	"strings"

	"github.com/timandy/routine"
)

// Field is one key/value pair attached to a logged event.
type Field struct {
	Key   string
	Value any
}

// F builds a Field. It exists so call sites read as a flat argument list
// instead of a slice of struct literals.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Logger is the tree's opaque logging collaborator. The tree only ever
// describes what happened (a key was inserted or replaced, a search hit or
// missed); it never depends on where that description ends up. Node splits
// and growth are not reported.
type Logger interface {
	Event(event string, fields ...Field)
}

// NopLogger discards every event. It is the default for a Tree constructed
// without an explicit logger.
type NopLogger struct{}

// Event implements Logger by doing nothing.
func (NopLogger) Event(string, ...Field) {}

// StderrLogger writes one line per event to stderr, tagged with the
// calling goroutine's id so interleaved output from concurrent callers
// (the tree itself is not safe for concurrent use, but callers may log
// from several trees at once) can still be told apart.
type StderrLogger struct{}

// Event writes event and its fields to stderr.
func (StderrLogger) Event(event string, fields ...Field) {
	buf := new(strings.Builder)

	fmt.Fprintf(buf, "art[g%04d] %s", routine.Goid(), event)

	for _, f := range fields {
		fmt.Fprintf(buf, " %s=%v", f.Key, f.Value)
	}

	buf.WriteByte('\n')

	_, _ = os.Stderr.WriteString(buf.String())
}
