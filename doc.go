// Package sellergrid provides the core logic for building a consignment
// seller's grid of priced items and printing the adhesive price tags that
// encode a scannable payload for each item.
//
// The package is local-first: a single seller works on a single ledger (the
// seller profile plus an ordered list of items), persisted as one JSON file
// after every mutation. The core functionalities include:
//   - Ledger Management: adding, removing and bulk-removing priced items
//     while guaranteeing the ledger never becomes empty.
//   - Price Validation: silent self-healing of price input (clamping and
//     rounding to whole units) with a transient highlight flag marking
//     corrected items.
//   - Selection Tracking: per-item selection flags kept consistent with the
//     aggregate select-all flag.
//   - Print Workflow: a short-lived state machine that snapshots the current
//     selection, selects everything for printing, asks for confirmation,
//     hands the tags to an external printer and restores the prior
//     selection exactly.
//   - Data Exchange: full-fidelity JSON snapshots, and a derived (lossy by
//     design) CSV or XLSX table of the grid.
//
// This package serves as the foundational logic for the `sgt` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package sellergrid
