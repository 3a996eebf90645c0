package kirana

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// noThreshold is the token written in place of a threshold when none is set.
const noThreshold = "None"

// The inventory file holds one item per line, with three comma separated
// fields:
//
//	name,quantity,threshold
//
// threshold is either a base-10 integer or the token "None".
//
// Fields follow the CSV quoting rules: a name that contains a comma, a double
// quote or a line break is written between double quotes. Any other name is
// written as is, so plain files stay readable and easy to edit by hand. A
// double quote inside an unquoted name is read literally.

// DecodeInventory decodes an inventory from its file representation.
//
// Blank lines are skipped. Any malformed record fails the whole decoding,
// the error mentions its line number.
func DecodeInventory(r io.Reader) (*Inventory, error) {
	inv := NewInventory()

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.ReuseRecord = true
	// hand written files may hold a bare quote in a name, e.g. 5" Pipe.
	cr.LazyQuotes = true

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("format error: %w", err)
		}
		line, _ := cr.FieldPos(0)

		item := record[0]
		if inv.Has(item) {
			return nil, fmt.Errorf("format error on line %d: item %q is already defined", line, item)
		}

		quantity, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil || quantity < 0 {
			return nil, fmt.Errorf("format error on line %d: invalid quantity %q for item %q", line, record[1], item)
		}
		inv.put(item, quantity)

		limit := strings.TrimSpace(record[2])
		if limit == noThreshold {
			continue
		}
		threshold, err := strconv.Atoi(limit)
		if err != nil || threshold < 0 {
			return nil, fmt.Errorf("format error on line %d: invalid threshold %q for item %q", line, record[2], item)
		}
		inv.limits[item] = threshold
	}
	return inv, nil
}

// EncodeInventory writes every stocked item of inv to w, in insertion order.
//
// Thresholds set on items that are not in stock are not written.
func EncodeInventory(w io.Writer, inv *Inventory) error {
	cw := csv.NewWriter(w)
	for e := range inv.Entries() {
		threshold := noThreshold
		if e.HasThreshold {
			threshold = strconv.Itoa(e.Threshold)
		}
		if err := cw.Write([]string{e.Item, strconv.Itoa(e.Quantity), threshold}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
