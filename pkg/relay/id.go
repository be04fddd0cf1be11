package relay

// MetricID identifies a single metric instance. Identifiers for statically
// known metrics are dense and assigned at build time; identifiers for
// runtime-registered metrics carry the dynamic tag bit and are sparse.
// An identifier is stable for the lifetime of the process that defined it
// and unique only within its tag space.
type MetricID uint32

// dynamicTag marks an identifier as runtime-registered. Static identifiers
// never have this bit set.
const dynamicTag MetricID = 1 << 31

// NewDynamicID returns the dynamic-tagged identifier for n.
func NewDynamicID(n uint32) MetricID {
	return MetricID(n) | dynamicTag
}

// IsDynamic reports whether the identifier belongs to the runtime-registered
// space. Dynamic identifiers are resolved through the dynamic registry during
// replay; all others resolve through the compiled-in store.
func (id MetricID) IsDynamic() bool {
	return id&dynamicTag != 0
}
