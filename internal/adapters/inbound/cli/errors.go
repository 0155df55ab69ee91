package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/makeca/make-ca/internal/adapters/outbound/tui"
	"github.com/makeca/make-ca/internal/domain"
)

// printError reports err without a stack trace. User errors carry a hint;
// unknown commands point at --help.
func printError(w io.Writer, err error) {
	if ue, ok := domain.AsUserError(err); ok {
		fmt.Fprint(w, tui.Error(ue.Msg))
		if ue.Hint != "" {
			fmt.Fprint(w, tui.Hint(ue.Hint))
		}
		return
	}

	msg := err.Error()
	if strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag") || strings.HasPrefix(msg, "unknown shorthand flag") {
		fmt.Fprint(w, tui.Error(msg))
		fmt.Fprint(w, tui.Hint("make-ca --help"))
		return
	}

	fmt.Fprintf(w, "Error: %s\n", msg)
}
