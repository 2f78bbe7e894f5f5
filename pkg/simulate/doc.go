// Package simulate implements a deterministic discrete-event simulation of a
// flexible job shop: products with per-type recipes are generated at random
// intervals, dispatched by a router to machines that process same-type
// batches, and collected by a sink that records per-product flow times.
package simulate
