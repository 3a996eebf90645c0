// Package notify delivers low-stock alerts to the shop keeper.
//
// Alerts can go to several channels at once: the desktop notification area
// and the application log. Delivery is best-effort, a failing channel is
// logged and never stops the others.
package notify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/kirana"
	"go.uber.org/zap"
)

// Channel names accepted by Parse.
const (
	ChannelDesktop = "desktop"
	ChannelLog     = "log"
	ChannelNone    = "none"
)

type channel struct {
	name     string
	notifier kirana.Notifier
}

// Dispatcher fans alerts out to a list of channels.
type Dispatcher struct {
	logger   *zap.Logger
	channels []channel
}

// NewDispatcher returns a dispatcher without channels, failures are reported to logger.
func NewDispatcher(logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{logger: logger}
}

// Add registers a notifier under name.
func (d *Dispatcher) Add(name string, n kirana.Notifier) *Dispatcher {
	d.channels = append(d.channels, channel{name: name, notifier: n})
	return d
}

// Channels returns the registered channel names, in order.
func (d *Dispatcher) Channels() []string {
	names := make([]string, 0, len(d.channels))
	for _, c := range d.channels {
		names = append(names, c.name)
	}
	return names
}

// Notify delivers a to every channel and returns the joined delivery errors.
func (d *Dispatcher) Notify(a kirana.AlertEvent) error {
	var errs []error
	for _, c := range d.channels {
		if err := c.notifier.Notify(a); err != nil {
			d.logger.Warn("alert delivery failed",
				zap.String("channel", c.name),
				zap.String("item", a.Item),
				zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", c.name, err))
		}
	}
	return errors.Join(errs...)
}

// Parse builds a dispatcher from a comma separated list of channel names,
// e.g. "desktop,log". "none" (or an empty list) yields a dispatcher that
// drops every alert.
func Parse(list string, logger *zap.Logger) (*Dispatcher, error) {
	d := NewDispatcher(logger)
	seen := make(map[string]bool)
	for _, name := range strings.Split(list, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		switch name {
		case ChannelDesktop:
			d.Add(name, NewDesktop())
		case ChannelLog:
			d.Add(name, NewLog(d.logger))
		case ChannelNone:
		default:
			return nil, fmt.Errorf("unknown notification channel %q, valid channels are %s, %s and %s", name, ChannelDesktop, ChannelLog, ChannelNone)
		}
	}
	if seen[ChannelNone] && len(d.channels) > 0 {
		return nil, fmt.Errorf("notification channel %q cannot be combined with other channels", ChannelNone)
	}
	return d, nil
}
