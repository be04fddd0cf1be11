// Ganymede is a cross-process metric relay: it accumulates metric updates
// produced in non-primary processes and ships them, in bounded batches, to
// the primary process where they merge into the canonical metric stores.
//
// The CLI exercises the relay end to end over a file:
//
//	# Accumulate a sample workload and write the encoded payload
//	ganymede emit --output batch.bin
//
//	# Replay an encoded payload into the demo stores and print the result
//	ganymede ingest --input batch.bin
//
//	# Show version information
//	ganymede version
//
// The transport that would normally carry the payload between processes is
// external to this repository; emit and ingest stand in for its two ends.
package main

func main() {
	Execute()
}
