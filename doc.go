// Package inventory provides a small, local-first stock ledger: a keyed
// mapping from item names to integer quantities, persisted as a single
// human-readable JSON object.
//
// The core functionalities include:
//   - Ledger Management: Adding and removing stock for named items, with
//     entries deleted rather than allowed to reach a quantity of zero or
//     below, and an optional journal of human-readable change records.
//   - Data Persistence: Encoding the ledger to a pretty-printed JSON object
//     and decoding it back tolerantly, skipping entries whose values cannot
//     be coerced to an integer instead of failing the whole load.
//   - Reporting: Plain-text and markdown reports of current stock, including
//     items below a low-stock threshold.
//   - Import: Extracting item quantities out of arbitrary third-party JSON
//     documents with a JSONPath expression.
//
// This package serves as the foundational logic for the `stk` command-line
// tool. Operations never panic on bad input: validation failures are
// reported as typed errors and expected degradations are logged.
package inventory
