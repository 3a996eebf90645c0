// Package cmd implements the ksm command line application.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/kirana"
	"github.com/etnz/kirana/config"
	"github.com/etnz/kirana/notify"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&viewCmd{}, "stock")
	c.Register(&sellCmd{}, "stock")
	c.Register(&addCmd{}, "stock")
	c.Register(&thresholdCmd{}, "stock")
	c.Register(&alertsCmd{}, "stock")

	c.Register(&menuCmd{}, "interactive")

	c.Register(&fmtCmd{}, "maintenance")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile     = flag.String("config", "", "Path to a ksm.yaml configuration file")
	dataFile       = flag.String("data-file", "", "Path to the inventory file (default from $KSM_DATA_FILE or test.txt)")
	logLevel       = flag.String("log-level", "", "Log level: debug, info, warn or error (default from $KSM_LOG_LEVEL or warn)")
	notifyChannels = flag.String("notify", "", "Comma separated alert channels: desktop, log or none (default from $KSM_NOTIFY or desktop,log)")
)

var logger = zap.NewNop()

// Setup resolves the settings not given on the command line and creates the
// logger. It must be called after the global flags are parsed.
func Setup() error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return fmt.Errorf("could not load .env file: %w", err)
	}
	cfg, err := config.Load(*configFile)
	if err != nil {
		return err
	}
	if *dataFile == "" {
		*dataFile = cfg.DataFile
	}
	if *logLevel == "" {
		*logLevel = cfg.LogLevel
	}
	if *notifyChannels == "" {
		*notifyChannels = cfg.Notify
	}

	l, err := newLogger(*logLevel)
	if err != nil {
		return err
	}
	logger = l
	if cfg.File != "" {
		logger.Debug("configuration loaded", zap.String("file", cfg.File))
	}
	return nil
}

// Close flushes the logger.
func Close() {
	_ = logger.Sync()
}

// newLogger creates a human friendly logger writing to stderr.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return cfg.Build()
}

// DecodeInventory loads the inventory from the app data file and attaches the
// configured notification channels to it.
func DecodeInventory() (*kirana.Inventory, error) {
	dispatcher, err := notify.Parse(*notifyChannels, logger)
	if err != nil {
		return nil, err
	}
	inv, err := kirana.LoadInventory(*dataFile)
	if err != nil {
		return nil, err
	}
	inv.SetNotifier(dispatcher)
	logger.Info("inventory loaded",
		zap.String("file", *dataFile),
		zap.Int("items", inv.Len()),
		zap.Strings("notify", dispatcher.Channels()))
	return inv, nil
}

// EncodeInventory saves the inventory into the app data file.
func EncodeInventory(inv *kirana.Inventory) error {
	if err := kirana.SaveInventory(*dataFile, inv); err != nil {
		return err
	}
	logger.Info("inventory saved", zap.String("file", *dataFile), zap.Int("items", inv.Len()))
	return nil
}

// printMarkdown displays markdown on stdout, styled when stdout is a terminal.
func printMarkdown(md string) {
	fprintMarkdown(os.Stdout, md)
}

func fprintMarkdown(w io.Writer, md string) {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		out, err := renderMarkdown(md)
		if err == nil {
			fmt.Fprint(w, out)
			return
		}
		logger.Debug("markdown rendering failed, printing raw markdown", zap.Error(err))
	}
	fmt.Fprint(w, md)
}

// renderMarkdown styles md for the terminal.
func renderMarkdown(md string) (string, error) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
