package notify

import (
	"github.com/etnz/kirana"
	"github.com/gen2brain/beeep"
)

// Desktop shows alerts in the host desktop notification area.
type Desktop struct {
	show func(title, message string) error
}

// NewDesktop returns a notifier using the host notification service.
func NewDesktop() *Desktop {
	return &Desktop{show: func(title, message string) error {
		return beeep.Notify(title, message, "")
	}}
}

// Notify shows a notification for a.
func (d *Desktop) Notify(a kirana.AlertEvent) error {
	return d.show(a.Title(), a.Message())
}
