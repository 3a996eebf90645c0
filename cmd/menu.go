package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/kirana"
	"github.com/etnz/kirana/renderer"
	"github.com/google/subcommands"
)

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "manage the stock from an interactive menu" }
func (*menuCmd) Usage() string {
	return `ksm menu

  Opens the interactive menu. This is also what ksm does when called without
  a command. Type 'done' at any prompt to go back to the menu. Changes are
  saved when leaving with choice 5 or at the end of the input.
`
}

func (*menuCmd) SetFlags(f *flag.FlagSet) {}

func (*menuCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return Menu(ctx)
}

// Menu runs the interactive menu on the standard input and output.
func Menu(_ context.Context) subcommands.ExitStatus {
	inv, err := DecodeInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		return subcommands.ExitFailure
	}
	c := newConsole(inv, os.Stdin, os.Stdout)
	if err := c.run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving inventory: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// errAborted is returned by prompts when the operator typed the abort token
// or when the input is over.
var errAborted = errors.New("aborted")

// console is the interactive session over an inventory.
type console struct {
	inv  *kirana.Inventory
	in   *bufio.Reader
	out  io.Writer
	save func(*kirana.Inventory) error
	eof  bool
}

func newConsole(inv *kirana.Inventory, in io.Reader, out io.Writer) *console {
	return &console{
		inv:  inv,
		in:   bufio.NewReader(in),
		out:  out,
		save: EncodeInventory,
	}
}

// run loops over the menu until the operator exits, then saves the inventory.
func (c *console) run() error {
	for {
		c.displayMenu()
		choice, err := c.readLine("Enter your choice (1-5): ")
		if err != nil {
			// end of input is a way to exit.
			fmt.Fprintln(c.out)
			return c.exit()
		}

		switch strings.TrimSpace(choice) {
		case "1":
			fprintMarkdown(c.out, renderer.StockMarkdown(c.inv.View()))
		case "2":
			c.sell()
		case "3":
			c.add()
		case "4":
			c.setThreshold()
		case "5":
			return c.exit()
		default:
			c.fail("Error: Invalid choice. Please enter a number between 1 and 5.")
		}
		if c.eof {
			return c.exit()
		}
	}
}

func (c *console) displayMenu() {
	fmt.Fprintln(c.out, "Welcome To Kirana Stock Manager")
	fmt.Fprintln(c.out, "Enter the number to perform the respective task.")
	fmt.Fprintln(c.out, "1: View Available Stock")
	fmt.Fprintln(c.out, "2: Sold Stock")
	fmt.Fprintln(c.out, "3: Add New Stock")
	fmt.Fprintln(c.out, "4: Set Quantity Limit")
	fmt.Fprintln(c.out, "5: Exit")
}

func (c *console) exit() error {
	c.info("Exiting Kirana Stock Manager. Goodbye!")
	return c.save(c.inv)
}

func (c *console) sell() {
	item, qty, err := c.askItemAndQuantity(
		"Enter the name of the sold item (or type 'done' to finish): ",
		"Enter the quantity of %s sold: ")
	if err != nil {
		return
	}
	if _, err := c.inv.Sell(item, qty); err != nil {
		c.fail(renderer.Error(err))
		return
	}
	c.info(renderer.Sold(item, qty))
}

func (c *console) add() {
	item, qty, err := c.askItemAndQuantity(
		"Enter the name of the new item (or type 'done' to finish): ",
		"Enter the quantity of %s to be added: ")
	if err != nil {
		return
	}
	if _, err := c.inv.AddStock(item, qty); err != nil {
		c.fail(renderer.Error(err))
		return
	}
	c.info(renderer.Added(item, qty))
}

func (c *console) setThreshold() {
	item, limit, err := c.askItemAndQuantity(
		"Enter the name of the item to set a quantity limit (or type 'done' to finish): ",
		"Enter the quantity limit for %s: ")
	if err != nil {
		return
	}
	if err := c.inv.SetThreshold(item, limit); err != nil {
		c.fail(renderer.Error(err))
		return
	}
	c.info(renderer.ThresholdSet(item, limit))
}

// askItemAndQuantity prompts for an item name then for a whole number.
// Errors are already reported to the operator.
func (c *console) askItemAndQuantity(itemPrompt, quantityPrompt string) (string, int, error) {
	item, err := c.ask(itemPrompt)
	if err != nil {
		return "", 0, err
	}
	if strings.TrimSpace(item) == "" {
		c.fail("Error: Please enter an item name.")
		return "", 0, errAborted
	}
	answer, err := c.ask(fmt.Sprintf(quantityPrompt, item))
	if err != nil {
		return "", 0, err
	}
	qty, err := kirana.ParseQuantity(answer)
	if err != nil {
		c.fail(renderer.Error(err))
		return "", 0, err
	}
	return item, qty, nil
}

// ask prompts for a value, and returns errAborted if the operator typed the abort token.
// The answer is returned as typed, item names are compared verbatim.
func (c *console) ask(prompt string) (string, error) {
	answer, err := c.readLine(prompt)
	if err != nil {
		return "", errAborted
	}
	if kirana.IsDone(answer) {
		return "", errAborted
	}
	return answer, nil
}

// readLine prompts and reads one line without its line terminator.
// A last line without terminator is still returned, io.EOF is only
// returned when there is nothing left to read.
func (c *console) readLine(prompt string) (string, error) {
	if c.eof {
		return "", io.EOF
	}
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		c.eof = true
		if line == "" {
			return "", err
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *console) info(msg string) { fmt.Fprintln(c.out, msg) }
func (c *console) fail(msg string) { fmt.Fprintln(c.out, msg) }
