package relay

// Transport sizing constants. The accumulator counts payload accesses and
// requests a flush once the count reaches a watermark sized so that even
// that many consecutive worst-case updates cannot exceed the transport's
// maximum message size before the flush completes.
const (
	// MaxMessageBytes is the hard ceiling on one transport message (256 MiB).
	MaxMessageBytes = 256 << 20

	// WorstCaseUpdateBytes is the byte cost of the largest single update: an
	// event record with ten extras of ~100 bytes each.
	// 1056 = 8 (identifier) + 8 (timestamp) + 10*(4 + 100) (extras).
	WorstCaseUpdateBytes = 1056

	// DefaultAccessWatermark is the default number of payload accesses
	// between flush requests. 256 MiB fits roughly 254000 worst-case
	// updates; 90000 leaves room for encoding overhead and for the flush to
	// be scheduled and run while producers keep accumulating.
	DefaultAccessWatermark = 90000
)
