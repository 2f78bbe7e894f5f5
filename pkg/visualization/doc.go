// Package visualization renders flow-time datasets into the three SVG charts
// of the experiment: a per-product bar chart, a box-plot distribution and a
// binned frequency histogram, plus statistics tables for the terminal.
//
// The file naming and CSV column conventions used here form the contract with
// the experiment layer and must be preserved bit-for-bit.
package visualization
