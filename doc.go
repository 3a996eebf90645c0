// Package kirana provides the stock keeping logic of a small retail shop
// (a "kirana" store). It is designed to be local-first and simple: the whole
// inventory lives in memory and is persisted to a single human-readable file.
//
// The core functionalities include:
//   - Inventory Management: recording sales and stock arrivals for named
//     items, with quantities that can never go negative.
//   - Low-Stock Thresholds: an optional limit per item under which an
//     AlertEvent is raised and handed to a Notifier.
//   - Data Persistence: encoding and decoding the inventory to and from a
//     comma separated file, one item per line (e.g. "Rice,10,5" or
//     "Sugar,2,None").
//
// This package serves as the foundational logic for the `ksm` command-line
// tool. An Inventory is created at startup, either empty or with
// LoadInventory, passed to whoever needs it, and written back with
// SaveInventory at a controlled shutdown point.
package kirana
