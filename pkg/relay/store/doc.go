// Package store defines the metric store facade the replay dispatcher merges
// decoded payloads into: one accumulation interface per metric shape, a
// lookup-by-identifier contract, and the two store variants the dispatcher
// routes between.
//
// # Store Variants
//
//   - MapStore: the compiled-in store. Its lookup tables are populated once
//     at composition time and are read-only afterwards, so lookups need no
//     locking.
//   - Registry: the runtime-registered store. Registration takes an
//     exclusive lock; lookups take a shared lock and may proceed
//     concurrently from any number of replaying threads.
//
// # In-Memory Metrics
//
// The Memory* types are complete in-memory metric implementations that
// record every operation applied to them. They back the CLI demo stores and
// the test suites of the relay packages; production deployments supply their
// own implementations of the per-shape interfaces.
package store
