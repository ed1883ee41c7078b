/*
Package vsrtl provides a cycle-accurate simulation engine for hierarchical
register-transfer-level circuits.

Circuits are built from Components, each owning input/output Ports and
sub-Components. Port values are fixed-width bit vectors that propagate
combinationally between clock edges; ClockedComponents (registers,
memories) break combinational cycles and support reversible time travel
through a per-component history stack whose depth is bounded by the
Design's configurable reverse capacity.

Ports and Components form a live, addressable graph rather than a flat
array of boolean wires: a circuit's visual layer needs to introspect that
graph at run time (sub-components, per-port sources/sinks, change
notifications), so the trade is a heavier value type in exchange for that
introspection.
*/
package vsrtl
