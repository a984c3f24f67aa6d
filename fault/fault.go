// Package fault centralizes the core's fatal-diagnostic-then-abort error
// model. The core does not use resumable error channels: invariant
// violations, transport errors, and init cycles are all fatal and print a
// component-prefixed diagnostic before terminating, matching the original
// "Transport::abort:"/"VAR_<name>::init_()" message register.
package fault

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/tebeka/atexit"
)

// Exit terminates the process with the given status code. It defaults to
// atexit.Exit so normal runs still run any handlers registered with
// atexit.Register (no package in this module registers one); tests that
// need to observe a
// fatal diagnostic without killing the test binary replace it for the
// duration of the test.
var Exit = atexit.Exit

// Abortf logs a component-prefixed diagnostic at Error level and terminates
// the process via Exit. component is a short tag such as "ds" or
// "transport"; format and args build the rest of the message.
func Abortf(component, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	slog.Error(fmt.Sprintf("%s: %s", component, msg))
	fmt.Fprintf(os.Stderr, "%s: %s\n", component, msg)
	Exit(1)
}

// Assertf aborts with the given diagnostic if cond is false.
func Assertf(cond bool, component, format string, args ...any) {
	if !cond {
		Abortf(component, format, args...)
	}
}
