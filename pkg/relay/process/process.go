// Package process answers the two questions the relay's callers ask about
// their environment: does this process need to buffer updates for
// cross-process shipping at all, and is it running under test automation.
//
// Role detection itself is external; a hosting application installs a
// RoleProvider (and optionally an AutomationProvider) at composition time.
// The standalone configuration has no providers: NeedIPC is false unless a
// test forces it, and InAutomation is always false.
package process

import (
	"sync"
	"sync/atomic"
)

// Role identifies the kind of process the relay is running in. Only the
// primary process merges metrics; every other role buffers updates and
// ships them to the primary.
type Role int32

// Process roles. The named non-primary roles exist so hosting applications
// can log and register per-role teardown; the relay itself only
// distinguishes primary from everything else.
const (
	RolePrimary Role = iota
	RoleContent
	RoleGPU
	RoleSocket
	RoleUtility
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RolePrimary:
		return "primary"
	case RoleContent:
		return "content"
	case RoleGPU:
		return "gpu"
	case RoleSocket:
		return "socket"
	case RoleUtility:
		return "utility"
	default:
		return "unknown"
	}
}

// RoleProvider reports which role the current process runs as.
type RoleProvider interface {
	Role() Role
}

// FixedRole is a RoleProvider that always reports the same role.
type FixedRole Role

// Role implements RoleProvider.
func (r FixedRole) Role() Role {
	return Role(r)
}

// AutomationProvider reports whether the process runs under test
// automation. Callers use it to suppress batching entirely in test
// environments; the relay itself makes no decisions based on it.
type AutomationProvider interface {
	InAutomation() bool
}

// Override states for the test-only NeedIPC toggle.
const (
	overrideUnset int32 = iota
	overrideFalse
	overrideTrue
)

var (
	providerMu         sync.RWMutex
	roleProvider       RoleProvider
	automationProvider AutomationProvider

	// testNeedIPC overrides role-based detection when set. It exists so a
	// single-process test harness can exercise the cross-process path.
	testNeedIPC atomic.Int32
)

// SetRoleProvider installs the role-detection collaborator. Call once at
// application composition time, before any NeedIPC query.
func SetRoleProvider(p RoleProvider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	roleProvider = p
}

// SetAutomationProvider installs the automation-detection collaborator.
func SetAutomationProvider(p AutomationProvider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	automationProvider = p
}

// NeedIPC reports whether metric updates in this process must be buffered
// for cross-process shipping. A test override, when active, wins over role
// detection. Without a provider the process is assumed primary.
func NeedIPC() bool {
	switch testNeedIPC.Load() {
	case overrideTrue:
		return true
	case overrideFalse:
		return false
	}

	providerMu.RLock()
	p := roleProvider
	providerMu.RUnlock()
	if p == nil {
		return false
	}
	return p.Role() != RolePrimary
}

// InAutomation reports whether the process runs under test automation.
// Without a provider (the standalone configuration) it is always false.
func InAutomation() bool {
	providerMu.RLock()
	p := automationProvider
	providerMu.RUnlock()
	if p == nil {
		return false
	}
	return p.InAutomation()
}

// TestSetNeedIPC forces the NeedIPC answer and returns a restore function
// that reinstates the previous state. The restore function must run on
// every exit path:
//
//	restore := process.TestSetNeedIPC(true)
//	defer restore()
//
// Overrides nest: restoring an inner override reinstates the outer one.
func TestSetNeedIPC(need bool) (restore func()) {
	state := overrideFalse
	if need {
		state = overrideTrue
	}
	prev := testNeedIPC.Swap(state)
	return func() {
		testNeedIPC.Store(prev)
	}
}
