// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Warnf writes a "WARN: " line to dst unless quiet is set or dst is nil.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	logf(dst, quiet, "WARN: ", format, a...)
}

// Infof writes an "INFO: " line to dst unless quiet is set or dst is nil.
func Infof(dst io.Writer, quiet bool, format string, a ...any) {
	logf(dst, quiet, "INFO: ", format, a...)
}

func logf(dst io.Writer, quiet bool, prefix, format string, a ...any) {
	if quiet || dst == nil {
		return
	}
	_, _ = fmt.Fprintf(dst, prefix+format+"\n", a...)
}
