// Package relay defines the data model for cross-process metric shipping:
// the metric identifier space and the pending payload that accumulates
// metric updates in a non-primary process until they are harvested and
// replayed into the primary process's metric stores.
//
// # Architecture
//
// The relay system consists of four layers built on this package:
//
//  1. Payload Buffer (relay/buffer) - Accumulates updates under one mutex
//  2. Codec (relay/codec) - Binary encode/decode of a harvested payload
//  3. Replay Dispatcher (relay/replay) - Applies a decoded payload to stores
//  4. Metric Store Facade (relay/store) - Lookup-by-id contracts per shape
//
// # Data Flow
//
//	Producer Thread → Accumulator (mutex, access counter)
//	     ↓ harvest (encode + reset, same lock)
//	Encoded Payload (opaque binary blob)
//	     ↓ transport (out of scope)
//	Replay Dispatcher → Static Store / Dynamic Registry
//
// # Identifier Space
//
// Metric identifiers are 32-bit integers. Statically known metrics occupy a
// dense, contiguous space assigned at build time. Runtime-registered metrics
// carry a tag bit marking them dynamic; the two spaces never collide and are
// routed to different stores during replay.
package relay
