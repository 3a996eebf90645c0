package kirana

import (
	"fmt"
	"iter"
	"math"
)

// StockEntry is the state of a single item in the inventory.
type StockEntry struct {
	Item         string
	Quantity     int
	Threshold    int  // Only meaningful when HasThreshold is true.
	HasThreshold bool // false means no alert is configured for the item.
}

// IsLow reports whether the entry is below its configured threshold.
func (e StockEntry) IsLow() bool {
	return e.HasThreshold && e.Quantity < e.Threshold
}

// Alert returns the alert event for this entry.
func (e StockEntry) Alert() AlertEvent {
	return AlertEvent{Item: e.Item, Quantity: e.Quantity, Threshold: e.Threshold}
}

// Inventory maps item names to quantities and optional low-stock thresholds.
//
// Thresholds are stored apart from quantities: a threshold can be set on an
// item that is not (yet) in stock. Such a binding takes effect as soon as the
// item is added.
//
// An Inventory is not safe for concurrent use.
type Inventory struct {
	stock    map[string]int
	limits   map[string]int
	items    []string // stocked items, in insertion order
	notifier Notifier
}

// NewInventory returns an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{
		stock:  make(map[string]int),
		limits: make(map[string]int),
	}
}

// SetNotifier attaches the notifier that receives the alerts raised after
// each mutation. A nil notifier disables delivery.
func (inv *Inventory) SetNotifier(n Notifier) { inv.notifier = n }

// Len returns the number of items in stock.
func (inv *Inventory) Len() int { return len(inv.items) }

// Has reports whether item is in stock (possibly with a zero quantity).
func (inv *Inventory) Has(item string) bool {
	_, exists := inv.stock[item]
	return exists
}

// Entry returns the entry for item, and false if the item is not in stock.
func (inv *Inventory) Entry(item string) (StockEntry, bool) {
	q, exists := inv.stock[item]
	if !exists {
		return StockEntry{}, false
	}
	e := StockEntry{Item: item, Quantity: q}
	e.Threshold, e.HasThreshold = inv.limits[item]
	return e, true
}

// Threshold returns the threshold configured for item, whether or not the item is in stock.
func (inv *Inventory) Threshold(item string) (int, bool) {
	l, exists := inv.limits[item]
	return l, exists
}

// Items iterates over the item names in stock, in insertion order.
func (inv *Inventory) Items() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, item := range inv.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Entries iterates over the stocked entries, in insertion order.
func (inv *Inventory) Entries() iter.Seq[StockEntry] {
	return func(yield func(StockEntry) bool) {
		for _, item := range inv.items {
			e, _ := inv.Entry(item)
			if !yield(e) {
				return
			}
		}
	}
}

// StockReport is the listing of every item in stock.
type StockReport struct {
	Entries []StockEntry
}

// Empty reports whether there is no stock at all.
func (r StockReport) Empty() bool { return len(r.Entries) == 0 }

// Low returns the entries below their threshold.
func (r StockReport) Low() []StockEntry {
	var low []StockEntry
	for _, e := range r.Entries {
		if e.IsLow() {
			low = append(low, e)
		}
	}
	return low
}

// View returns a report of every item in stock.
func (inv *Inventory) View() StockReport {
	r := StockReport{Entries: make([]StockEntry, 0, len(inv.items))}
	for e := range inv.Entries() {
		r.Entries = append(r.Entries, e)
	}
	return r
}

// CheckThresholds returns one alert for every stocked item whose quantity is
// below its threshold.
func (inv *Inventory) CheckThresholds() []AlertEvent {
	var alerts []AlertEvent
	for e := range inv.Entries() {
		if e.IsLow() {
			alerts = append(alerts, e.Alert())
		}
	}
	return alerts
}

// Sell records the sale of qty units of item.
//
// The inventory is left unchanged on error. On success, thresholds are
// checked and the resulting alerts are both delivered to the notifier and
// returned.
func (inv *Inventory) Sell(item string, qty int) ([]AlertEvent, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("cannot sell %d units of %q: %w", qty, item, ErrInvalidQuantity)
	}
	current, exists := inv.stock[item]
	if !exists {
		return nil, fmt.Errorf("cannot sell %q: %w", item, ErrItemNotFound)
	}
	if qty > current {
		return nil, fmt.Errorf("cannot sell %d units of %q, only %d left: %w", qty, item, current, ErrInsufficientStock)
	}
	inv.stock[item] = current - qty
	return inv.RaiseAlerts(), nil
}

// AddStock adds qty units of item, creating the item if needed.
//
// Thresholds are checked after the addition, like after a sale.
func (inv *Inventory) AddStock(item string, qty int) ([]AlertEvent, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("cannot add %d units of %q: %w", qty, item, ErrInvalidQuantity)
	}
	current := inv.stock[item]
	if current > math.MaxInt-qty {
		return nil, fmt.Errorf("cannot add %d units of %q: quantity overflow: %w", qty, item, ErrInvalidQuantity)
	}
	inv.put(item, current+qty)
	return inv.RaiseAlerts(), nil
}

// SetThreshold sets the low-stock threshold of item to limit, replacing any
// previous one. The item does not need to be in stock.
func (inv *Inventory) SetThreshold(item string, limit int) error {
	if limit < 0 {
		return fmt.Errorf("cannot set a limit of %d for %q: %w", limit, item, ErrInvalidQuantity)
	}
	inv.limits[item] = limit
	return nil
}

// put sets the quantity of item, recording its position if it is new.
func (inv *Inventory) put(item string, qty int) {
	if _, exists := inv.stock[item]; !exists {
		inv.items = append(inv.items, item)
	}
	inv.stock[item] = qty
}

// RaiseAlerts checks thresholds and hands every alert to the notifier.
// Sell and AddStock call it after each change.
func (inv *Inventory) RaiseAlerts() []AlertEvent {
	alerts := inv.CheckThresholds()
	if inv.notifier != nil {
		for _, a := range alerts {
			// delivery failures must not affect the inventory.
			_ = inv.notifier.Notify(a)
		}
	}
	return alerts
}
