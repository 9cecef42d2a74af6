package handler

import (
	"io"

	"github.com/spf13/pflag"
)

// newFlagSet returns a page flag set that reports errors instead of exiting.
// Usage text is suppressed; parse errors are written as response envelopes.
func newFlagSet(page string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(page, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	return fs
}
