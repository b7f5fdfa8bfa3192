// Package ragdoll drives the sloth: two stick-controlled arms and two hands
// that grab whatever their sensors touch.
//
// Each tick the arms are driven first, using the grab intent recorded on the
// previous tick, and only then do the hands grab or let go.
package ragdoll
