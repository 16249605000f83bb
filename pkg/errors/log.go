package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is an ErrorHandler that writes errors to stderr.
type LogHandler struct {
	// Verbose adds the error kind and timestamp to each line.
	Verbose bool

	// Out overrides the destination. Nil means os.Stderr.
	Out io.Writer
}

// HandleError writes a KitError as one line.
func (h *LogHandler) HandleError(err *KitError) {
	if err == nil {
		return
	}
	out := h.Out
	if out == nil {
		out = os.Stderr
	}
	if h.Verbose {
		fmt.Fprintf(out, "[kit error] %s %s [%s]", err.Timestamp.Format("15:04:05.000"), err.Op, err.Kind)
		if err.Path != "" {
			fmt.Fprintf(out, " path=%s", err.Path)
		}
		fmt.Fprintf(out, ": %v\n", err.Err)
	} else {
		fmt.Fprintf(out, "[kit error] %s: %v\n", err.Op, err.Err)
	}
}
