package relay

import "testing"

// TestMetricID_IsDynamic tests the tag bit classification.
func TestMetricID_IsDynamic(t *testing.T) {
	tests := []struct {
		name    string
		id      MetricID
		dynamic bool
	}{
		{name: "zero", id: 0, dynamic: false},
		{name: "small static", id: 42, dynamic: false},
		{name: "largest static", id: 1<<31 - 1, dynamic: false},
		{name: "dynamic zero", id: NewDynamicID(0), dynamic: true},
		{name: "dynamic small", id: NewDynamicID(7), dynamic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.IsDynamic(); got != tt.dynamic {
				t.Errorf("IsDynamic(%d) = %v, want %v", tt.id, got, tt.dynamic)
			}
		})
	}
}

// TestNewDynamicID tests that the dynamic and static spaces never collide.
func TestNewDynamicID(t *testing.T) {
	static := MetricID(7)
	dynamic := NewDynamicID(7)

	if static == dynamic {
		t.Fatal("static and dynamic identifiers with the same base must differ")
	}
	if !dynamic.IsDynamic() {
		t.Error("NewDynamicID must set the dynamic tag")
	}
	if static.IsDynamic() {
		t.Error("plain identifier must not carry the dynamic tag")
	}
}
