package runtime

import (
	"fmt"
	"log/slog"
	"os/exec"
)

// Launcher controls the lifecycle of the local `ollama serve` process.
// The pull orchestrator only needs Start (to bring the service up before a
// download); the toggle endpoint uses both. It is an interface so tests and
// deployments that manage Ollama externally can substitute a no-op.
type Launcher interface {
	Start() error
	Stop() error
}

type execLauncher struct{}

// NewExecLauncher returns a Launcher that shells out to the ollama binary.
func NewExecLauncher() Launcher {
	return &execLauncher{}
}

func (l *execLauncher) Start() error {
	cmd := exec.Command("ollama", "serve")
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("could not start ollama serve: %w", err)
	}
	// Detach: the serve process outlives this call. Reap it in the
	// background so it does not linger as a zombie if it exits.
	go func() {
		if err := cmd.Wait(); err != nil {
			slog.Warn("ollama serve exited", "error", err)
		}
	}()
	return nil
}

func (l *execLauncher) Stop() error {
	out, err := exec.Command("pkill", "-f", "ollama serve").CombinedOutput()
	if err != nil {
		// pkill exits 1 when no process matched; not worth failing the call.
		slog.Debug("pkill ollama serve", "output", string(out), "error", err)
	}
	return nil
}

// NopLauncher does nothing. Useful when Ollama runs under an external
// supervisor (docker compose, systemd) and must not be touched.
type NopLauncher struct{}

func (NopLauncher) Start() error { return nil }
func (NopLauncher) Stop() error  { return nil }
