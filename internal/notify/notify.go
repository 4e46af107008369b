// Package notify implements notification channels (strategies), the
// factories that build them, the observers that log each send, and the
// Manager that ties them together.
package notify

import (
	"io"
	"os"
)

// out returns w, or stdout when w is nil.
func out(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
