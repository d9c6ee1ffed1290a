// Package neighbors provides pathing.NeighborStrategy implementations for
// A* search over SixAxis poses: a grid that steps translation only, a
// grid that additionally steps rotation within a bounded range, and a
// grid that walks the free cells of a pre-sampled space.Grid3D. None of
// these types imports pathing directly - each satisfies the interface
// structurally by exposing a matching Neighbors method.
package neighbors
