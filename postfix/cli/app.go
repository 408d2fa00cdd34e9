package cli

import (
	"context"
	"os"

	"github.com/knadh/koanf"
)

// Configuration holds global configuration values. We use koanf.
var Configuration *koanf.Koanf

// SignalContext is a global context for terminating the application by an interrupt
// signal.
var SignalContext context.Context = context.Background()

// Exit exits the application with an error code.
func Exit(errcode int) {
	os.Exit(errcode)
}
