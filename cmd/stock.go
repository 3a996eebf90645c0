package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/kirana"
	"github.com/etnz/kirana/renderer"
	"github.com/google/subcommands"
)

// failure reports err to the shop keeper and picks the exit status.
func failure(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, renderer.Error(err))
	if errors.Is(err, kirana.ErrInvalidQuantity) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// update loads the inventory, applies op and saves the inventory back if op succeeded.
func update(op func(inv *kirana.Inventory) error) subcommands.ExitStatus {
	inv, err := DecodeInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := op(inv); err != nil {
		return failure(err)
	}
	if err := EncodeInventory(inv); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving inventory: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// --- View Command ---

type viewCmd struct{}

func (*viewCmd) Name() string     { return "view" }
func (*viewCmd) Synopsis() string { return "list the available stock" }
func (*viewCmd) Usage() string {
	return `ksm view

  Lists every item in stock with its quantity. Items below their quantity
  limit are flagged.
`
}

func (*viewCmd) SetFlags(f *flag.FlagSet) {}

func (*viewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, err := DecodeInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.StockMarkdown(inv.View()))
	return subcommands.ExitSuccess
}

// --- Sell Command ---

type sellCmd struct {
	item     string
	quantity int
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record the sale of an item" }
func (*sellCmd) Usage() string {
	return `ksm sell -i <item> -q <quantity>

  Records the sale of some units of an item. The sale is rejected if the
  item is unknown or if there is not enough stock.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "i", "", "Item name (required)")
	f.IntVar(&c.quantity, "q", 0, "Number of units sold (required)")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.item == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return update(func(inv *kirana.Inventory) error {
		if _, err := inv.Sell(c.item, c.quantity); err != nil {
			return err
		}
		fmt.Println(renderer.Sold(c.item, c.quantity))
		return nil
	})
}

// --- Add Command ---

type addCmd struct {
	item     string
	quantity int
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add new stock for an item" }
func (*addCmd) Usage() string {
	return `ksm add -i <item> -q <quantity>

  Adds units of an item to the stock. Unknown items are created.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "i", "", "Item name (required)")
	f.IntVar(&c.quantity, "q", 0, "Number of units added (required)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.item == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return update(func(inv *kirana.Inventory) error {
		if _, err := inv.AddStock(c.item, c.quantity); err != nil {
			return err
		}
		fmt.Println(renderer.Added(c.item, c.quantity))
		return nil
	})
}

// --- Threshold Command ---

type thresholdCmd struct {
	item  string
	limit int
}

func (*thresholdCmd) Name() string     { return "threshold" }
func (*thresholdCmd) Synopsis() string { return "set the low-stock limit of an item" }
func (*thresholdCmd) Usage() string {
	return `ksm threshold -i <item> -l <limit>

  Sets the quantity under which an item raises a low-stock alert. Only the
  limits of items in stock are saved, so the item must be added first.
`
}

func (c *thresholdCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "i", "", "Item name (required)")
	f.IntVar(&c.limit, "l", -1, "Quantity limit (required)")
}

func (c *thresholdCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.item == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return update(func(inv *kirana.Inventory) error {
		if c.limit < 0 {
			return fmt.Errorf("cannot set a limit of %d for %q: %w", c.limit, c.item, kirana.ErrInvalidQuantity)
		}
		// a limit on an item out of stock would be lost when the file is saved.
		if !inv.Has(c.item) {
			fmt.Fprintf(os.Stderr, "Add %s to the stock with 'ksm add' before setting its quantity limit.\n", c.item)
			return fmt.Errorf("cannot set a limit for %q: %w", c.item, kirana.ErrItemNotFound)
		}
		if err := inv.SetThreshold(c.item, c.limit); err != nil {
			return err
		}
		fmt.Println(renderer.ThresholdSet(c.item, c.limit))
		return nil
	})
}

// --- Alerts Command ---

type alertsCmd struct{}

func (*alertsCmd) Name() string     { return "alerts" }
func (*alertsCmd) Synopsis() string { return "notify every item below its limit" }
func (*alertsCmd) Usage() string {
	return `ksm alerts

  Checks every item against its quantity limit, sends a notification for
  each item below it, and lists them.
`
}

func (*alertsCmd) SetFlags(f *flag.FlagSet) {}

func (*alertsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, err := DecodeInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		return subcommands.ExitFailure
	}
	alerts := inv.RaiseAlerts()
	printMarkdown(renderer.AlertsMarkdown(alerts))
	return subcommands.ExitSuccess
}
