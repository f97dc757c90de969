package pagedots

import (
	"fmt"
	"os"
)

// debugf prints a gesture trace line to stderr when debug mode is on.
func (c *Control) debugf(format string, args ...any) {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[pagedots] "+format+"\n", args...)
}
