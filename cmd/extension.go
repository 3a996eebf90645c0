package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Environment variables passed to extensions. They are also the variables
// read by the configuration, so an extension built on this package sees the
// same settings as ksm.
const (
	EnvDataFile = "KSM_DATA_FILE"
	EnvLogLevel = "KSM_LOG_LEVEL"
	EnvNotify   = "KSM_NOTIFY"
)

// Registered reports whether name is a command known to the commander.
func Registered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}

// RunExtension attempts to find and execute an external ksm-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "ksm-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		logger.Debug("extension not found in PATH", zap.String("name", name), zap.Error(err))
		return false, 0
	}

	c := exec.Command(lp, args...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	// resolved settings override the inherited ones.
	c.Env = append(os.Environ(),
		EnvDataFile+"="+*dataFile,
		EnvLogLevel+"="+*logLevel,
		EnvNotify+"="+*notifyChannels,
	)

	logger.Info("running extension", zap.String("path", lp), zap.Strings("args", args))
	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
			return true, exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
