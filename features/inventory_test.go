// Inventory BDD tests using godog.
//
// These tests load the scenarios of inventory.feature and run them against
// the kirana package.
package features

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/etnz/kirana"
)

// inventoryTestContext holds the state of a single scenario.
type inventoryTestContext struct {
	path   string
	inv    *kirana.Inventory
	report kirana.StockReport
	alerts []kirana.AlertEvent
	err    error
}

func (c *inventoryTestContext) reset(dir string) {
	c.path = filepath.Join(dir, "test.txt")
	c.inv = nil
	c.report = kirana.StockReport{}
	c.alerts = nil
	c.err = nil
}

func (c *inventoryTestContext) anInventoryFileContaining(content *godog.DocString) error {
	return os.WriteFile(c.path, []byte(content.Content+"\n"), 0644)
}

func (c *inventoryTestContext) anEmptyInventory() error {
	if err := os.Remove(c.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return c.theInventoryIsLoaded()
}

func (c *inventoryTestContext) theInventoryIsLoaded() error {
	inv, err := kirana.LoadInventory(c.path)
	if err != nil {
		return err
	}
	c.inv = inv
	return nil
}

func (c *inventoryTestContext) theInventoryIsSaved() error {
	return kirana.SaveInventory(c.path, c.inv)
}

func (c *inventoryTestContext) iCheckThresholds() error {
	c.alerts = c.inv.CheckThresholds()
	return nil
}

func (c *inventoryTestContext) iViewTheStock() error {
	c.report = c.inv.View()
	return nil
}

func (c *inventoryTestContext) iSellOf(qty int, item string) error {
	c.alerts, c.err = c.inv.Sell(item, qty)
	return nil
}

func (c *inventoryTestContext) iAddOf(qty int, item string) error {
	c.alerts, c.err = c.inv.AddStock(item, qty)
	return nil
}

func (c *inventoryTestContext) iSetTheThresholdOfTo(item string, limit int) error {
	c.err = c.inv.SetThreshold(item, limit)
	return nil
}

func (c *inventoryTestContext) theOperationSucceeds() error {
	if c.err != nil {
		return fmt.Errorf("expected success but got error: %v", c.err)
	}
	return nil
}

func (c *inventoryTestContext) theOperationFailsWith(msg string) error {
	if c.err == nil {
		return errors.New("expected the operation to fail but it succeeded")
	}
	if !strings.Contains(c.err.Error(), msg) {
		return fmt.Errorf("expected error containing %q, got %q", msg, c.err)
	}
	return nil
}

func (c *inventoryTestContext) hasQuantity(item string, qty int) error {
	e, ok := c.inv.Entry(item)
	if !ok {
		return fmt.Errorf("%q is not in stock", item)
	}
	if e.Quantity != qty {
		return fmt.Errorf("expected %q to have quantity %d, got %d", item, qty, e.Quantity)
	}
	return nil
}

func (c *inventoryTestContext) hasNoThreshold(item string) error {
	if limit, ok := c.inv.Threshold(item); ok {
		return fmt.Errorf("expected %q to have no threshold, got %d", item, limit)
	}
	return nil
}

func (c *inventoryTestContext) isNotInStock(item string) error {
	if c.inv.Has(item) {
		return fmt.Errorf("expected %q not to be in stock", item)
	}
	return nil
}

func (c *inventoryTestContext) anAlertIsRaisedForWithQuantity(item string, qty int) error {
	for _, a := range c.alerts {
		if a.Item == item {
			if a.Quantity != qty {
				return fmt.Errorf("expected alert for %q with quantity %d, got %d", item, qty, a.Quantity)
			}
			return nil
		}
	}
	return fmt.Errorf("expected an alert for %q, got %v", item, c.alerts)
}

func (c *inventoryTestContext) noAlertIsRaisedFor(item string) error {
	for _, a := range c.alerts {
		if a.Item == item {
			return fmt.Errorf("expected no alert for %q, got %v", item, a)
		}
	}
	return nil
}

func (c *inventoryTestContext) flagged(item string, low bool) error {
	for _, e := range c.report.Entries {
		if e.Item == item {
			if e.IsLow() != low {
				return fmt.Errorf("expected %q low=%v, got %v", item, low, e.IsLow())
			}
			return nil
		}
	}
	return fmt.Errorf("%q is not in the stock report", item)
}

func (c *inventoryTestContext) isFlaggedAsLow(item string) error    { return c.flagged(item, true) }
func (c *inventoryTestContext) isNotFlaggedAsLow(item string) error { return c.flagged(item, false) }

func (c *inventoryTestContext) theStockReportIsEmpty() error {
	if !c.report.Empty() {
		return fmt.Errorf("expected an empty report, got %v", c.report.Entries)
	}
	return nil
}

func (c *inventoryTestContext) theInventoryFileContains(content *godog.DocString) error {
	got, err := os.ReadFile(c.path)
	if err != nil {
		return err
	}
	if want := content.Content + "\n"; string(got) != want {
		return fmt.Errorf("inventory file mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &inventoryTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		dir, err := os.MkdirTemp("", "kirana-features-*")
		if err != nil {
			return ctx, err
		}
		tc.reset(dir)
		return ctx, nil
	})
	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		return ctx, os.RemoveAll(filepath.Dir(tc.path))
	})

	// Given steps
	ctx.Step(`^an inventory file containing:$`, tc.anInventoryFileContaining)
	ctx.Step(`^an empty inventory$`, tc.anEmptyInventory)
	ctx.Step(`^the inventory is loaded$`, tc.theInventoryIsLoaded)
	ctx.Step(`^the inventory is saved$`, tc.theInventoryIsSaved)

	// When steps
	ctx.Step(`^I check thresholds$`, tc.iCheckThresholds)
	ctx.Step(`^I view the stock$`, tc.iViewTheStock)
	ctx.Step(`^I sell (-?\d+) of "([^"]*)"$`, tc.iSellOf)
	ctx.Step(`^I add (-?\d+) of "([^"]*)"$`, tc.iAddOf)
	ctx.Step(`^I set the threshold of "([^"]*)" to (-?\d+)$`, tc.iSetTheThresholdOfTo)

	// Then steps
	ctx.Step(`^the operation succeeds$`, tc.theOperationSucceeds)
	ctx.Step(`^the operation fails with "([^"]*)"$`, tc.theOperationFailsWith)
	ctx.Step(`^"([^"]*)" has quantity (\d+)$`, tc.hasQuantity)
	ctx.Step(`^"([^"]*)" has no threshold$`, tc.hasNoThreshold)
	ctx.Step(`^"([^"]*)" is not in stock$`, tc.isNotInStock)
	ctx.Step(`^an alert is raised for "([^"]*)" with quantity (\d+)$`, tc.anAlertIsRaisedForWithQuantity)
	ctx.Step(`^no alert is raised for "([^"]*)"$`, tc.noAlertIsRaisedFor)
	ctx.Step(`^"([^"]*)" is flagged as low$`, tc.isFlaggedAsLow)
	ctx.Step(`^"([^"]*)" is not flagged as low$`, tc.isNotFlaggedAsLow)
	ctx.Step(`^the stock report is empty$`, tc.theStockReportIsEmpty)
	ctx.Step(`^the inventory file contains:$`, tc.theInventoryFileContains)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"inventory.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
