package relay

// EventRecord is one recorded event occurrence: a millisecond timestamp
// relative to the recording process's epoch, plus up to ten string extras.
// Event timestamps are monotonic per metric, so the order of records within
// a payload container must be preserved end to end.
type EventRecord struct {
	Timestamp uint64            `msgpack:"timestamp"`
	Extra     map[string]string `msgpack:"extra"`
}

// LabelPair is the key of a dual-labeled counter: a primary key subdivided
// by a secondary category, each resolved to its own sub-metric on replay.
type LabelPair struct {
	Key      string `msgpack:"key"`
	Category string `msgpack:"category"`
}

// RateDelta is a paired numerator/denominator update for a rate metric.
type RateDelta struct {
	Numerator   int32 `msgpack:"numerator"`
	Denominator int32 `msgpack:"denominator"`
}

// Payload is the pending batch of metric updates accumulated in a
// non-primary process, one container per metric shape. Counter-family
// containers (Counters, Denominators, Numerators, Rates, and the labeled
// counter variants) hold deltas pre-merged per identifier; sample, string
// list, and event containers hold ordered sequences with insertion order
// preserved.
//
// A Payload must only be mutated while holding the owning Accumulator's
// lock; see relay/buffer.
type Payload struct {
	Booleans             map[MetricID]bool                  `msgpack:"booleans"`
	LabeledBooleans      map[MetricID]map[string]bool       `msgpack:"labeled_booleans"`
	Counters             map[MetricID]int32                 `msgpack:"counters"`
	CustomSamples        map[MetricID][]int64               `msgpack:"custom_samples"`
	LabeledCustomSamples map[MetricID]map[string][]int64    `msgpack:"labeled_custom_samples"`
	Denominators         map[MetricID]int32                 `msgpack:"denominators"`
	Events               map[MetricID][]EventRecord         `msgpack:"events"`
	LabeledCounters      map[MetricID]map[string]int32      `msgpack:"labeled_counters"`
	DualLabeledCounters  map[MetricID]map[LabelPair]int32   `msgpack:"dual_labeled_counters"`
	MemorySamples        map[MetricID][]uint64              `msgpack:"memory_samples"`
	LabeledMemorySamples map[MetricID]map[string][]uint64   `msgpack:"labeled_memory_samples"`
	Numerators           map[MetricID]int32                 `msgpack:"numerators"`
	Rates                map[MetricID]RateDelta             `msgpack:"rates"`
	StringLists          map[MetricID][]string              `msgpack:"string_lists"`
	TimingSamples        map[MetricID][]uint64              `msgpack:"timing_samples"`
	LabeledTimingSamples map[MetricID]map[string][]uint64   `msgpack:"labeled_timing_samples"`
}

// NewPayload returns an empty payload with every container allocated.
func NewPayload() *Payload {
	p := &Payload{}
	p.Init()
	return p
}

// Init allocates any nil containers in place. Called after construction and
// after decoding, so callers can rely on every container being non-nil.
func (p *Payload) Init() {
	if p.Booleans == nil {
		p.Booleans = make(map[MetricID]bool)
	}
	if p.LabeledBooleans == nil {
		p.LabeledBooleans = make(map[MetricID]map[string]bool)
	}
	if p.Counters == nil {
		p.Counters = make(map[MetricID]int32)
	}
	if p.CustomSamples == nil {
		p.CustomSamples = make(map[MetricID][]int64)
	}
	if p.LabeledCustomSamples == nil {
		p.LabeledCustomSamples = make(map[MetricID]map[string][]int64)
	}
	if p.Denominators == nil {
		p.Denominators = make(map[MetricID]int32)
	}
	if p.Events == nil {
		p.Events = make(map[MetricID][]EventRecord)
	}
	if p.LabeledCounters == nil {
		p.LabeledCounters = make(map[MetricID]map[string]int32)
	}
	if p.DualLabeledCounters == nil {
		p.DualLabeledCounters = make(map[MetricID]map[LabelPair]int32)
	}
	if p.MemorySamples == nil {
		p.MemorySamples = make(map[MetricID][]uint64)
	}
	if p.LabeledMemorySamples == nil {
		p.LabeledMemorySamples = make(map[MetricID]map[string][]uint64)
	}
	if p.Numerators == nil {
		p.Numerators = make(map[MetricID]int32)
	}
	if p.Rates == nil {
		p.Rates = make(map[MetricID]RateDelta)
	}
	if p.StringLists == nil {
		p.StringLists = make(map[MetricID][]string)
	}
	if p.TimingSamples == nil {
		p.TimingSamples = make(map[MetricID][]uint64)
	}
	if p.LabeledTimingSamples == nil {
		p.LabeledTimingSamples = make(map[MetricID]map[string][]uint64)
	}
}

// Reset empties the payload in place. The payload value itself lives for
// the process's duration; only its contents are replaced.
func (p *Payload) Reset() {
	*p = Payload{}
	p.Init()
}

// IsEmpty reports whether no container holds any pending update.
func (p *Payload) IsEmpty() bool {
	return len(p.Booleans) == 0 &&
		len(p.LabeledBooleans) == 0 &&
		len(p.Counters) == 0 &&
		len(p.CustomSamples) == 0 &&
		len(p.LabeledCustomSamples) == 0 &&
		len(p.Denominators) == 0 &&
		len(p.Events) == 0 &&
		len(p.LabeledCounters) == 0 &&
		len(p.DualLabeledCounters) == 0 &&
		len(p.MemorySamples) == 0 &&
		len(p.LabeledMemorySamples) == 0 &&
		len(p.Numerators) == 0 &&
		len(p.Rates) == 0 &&
		len(p.StringLists) == 0 &&
		len(p.TimingSamples) == 0 &&
		len(p.LabeledTimingSamples) == 0
}

// Len returns the number of identifiers with at least one pending update,
// summed across all containers.
func (p *Payload) Len() int {
	return len(p.Booleans) +
		len(p.LabeledBooleans) +
		len(p.Counters) +
		len(p.CustomSamples) +
		len(p.LabeledCustomSamples) +
		len(p.Denominators) +
		len(p.Events) +
		len(p.LabeledCounters) +
		len(p.DualLabeledCounters) +
		len(p.MemorySamples) +
		len(p.LabeledMemorySamples) +
		len(p.Numerators) +
		len(p.Rates) +
		len(p.StringLists) +
		len(p.TimingSamples) +
		len(p.LabeledTimingSamples)
}
