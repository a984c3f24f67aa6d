// Package debugattach implements the UME_DEBUG_RANK attach point: a rank
// that matches the environment variable spins so a developer can attach a
// debugger before the process continues.
package debugattach

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// pollInterval is how often WaitIfTargeted re-checks Released while spinning.
var pollInterval = 5 * time.Second

// Released, when set true (typically from a debugger session), lets a
// spinning WaitIfTargeted call return. It starts false every process.
var Released = false

// WaitIfTargeted spins if UME_DEBUG_RANK is set and equal to mype, printing
// an attach hint and polling Released until it becomes true. If the env var
// is unset, unparsable, or names a different rank, it returns immediately.
func WaitIfTargeted(mype int) {
	envvalue, ok := os.LookupEnv("UME_DEBUG_RANK")
	if !ok {
		return
	}
	stoppe, err := strconv.Atoi(envvalue)
	if err != nil {
		slog.Warn("debugattach: UME_DEBUG_RANK is not an integer", "value", envvalue)
		return
	}
	if stoppe != mype {
		return
	}

	slog.Log(context.Background(), slog.LevelWarn+1, "debugattach: execution paused",
		"rank", stoppe, "pid", os.Getpid(),
		"hint", "set debugattach.Released = true from a debugger to continue")

	for !Released {
		time.Sleep(pollInterval)
	}
}
