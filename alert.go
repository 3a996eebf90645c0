package kirana

import "fmt"

// AlertEvent describes an item that has fallen below its configured threshold.
type AlertEvent struct {
	Item      string
	Quantity  int
	Threshold int
}

// Title returns the notification title for the alert.
func (a AlertEvent) Title() string {
	return fmt.Sprintf("Stock Alert: %s", a.Item)
}

// Message returns the notification body for the alert.
func (a AlertEvent) Message() string {
	return fmt.Sprintf("Stock of %s is below the set limit! Current quantity: %d", a.Item, a.Quantity)
}

// Notifier delivers alerts to the operator.
//
// Delivery is best-effort: the inventory ignores the returned error, it is up
// to the implementation to report it.
type Notifier interface {
	Notify(AlertEvent) error
}

// NotifierFunc adapts an ordinary function to the Notifier interface.
type NotifierFunc func(AlertEvent) error

// Notify calls f(a).
func (f NotifierFunc) Notify(a AlertEvent) error { return f(a) }
