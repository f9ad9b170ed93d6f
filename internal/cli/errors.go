package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ZebulonRouseFrantzich/libcc/internal/config"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// PrintError writes "Error: <err>" to w. The prefix is red when w is a
// terminal. Lua stack traces are included only when verbose is set.
func PrintError(w io.Writer, err error, verbose bool) {
	if err == nil {
		return
	}

	prefix := color.New(color.FgRed, color.Bold)
	if !isTerminal(w) {
		prefix.DisableColor()
	}

	prefix.Fprint(w, "Error:")
	fmt.Fprintf(w, " %s\n", config.FormatError(err, verbose))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
