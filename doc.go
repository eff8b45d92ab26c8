// Package drops records boss clears and computes the drop rate of their
// rewards.
//
// A Book holds one Ledger per boss and difficulty known to the Catalog. A
// Ledger keeps its entries in order and maintains running totals, so that
// counts and weighted trials are available without scanning the entries:
//   - Catalog: the reward categories, the bosses and their difficulties,
//     release dates and drop rate events, decoded from YAML.
//   - Ledger: the clears of one boss at one difficulty and their statistics.
//     Rows that cannot be read are kept verbatim so that nothing is lost.
//   - Encoding: the .mcsv text format, one comma separated table per ledger.
//   - Store: an editing session on a ledger file, whose path is remembered
//     in the JSON settings file.
//   - Reports: per ledger statistics and cross boss summaries over a range
//     of dates.
//
// This package serves as the foundational logic for the `drops` command-line
// tool.
package drops
