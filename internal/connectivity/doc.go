// Package connectivity tracks whether the squadron backend is reachable.
//
// A [Monitor] wraps a pluggable [Source] into a single boolean state and a
// list of listeners notified on every transition. [ProbeSource] derives the
// state from periodic HTTP probes; [ManualSource] is driven from code and is
// what tests use.
package connectivity
