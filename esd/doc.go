// Package esd is the rich, pointer-based event model that flat events are
// built from and reconstructed into.
//
// An Event owns its run information (trigger class names), up to three primary
// vertices, a track collection and a V0 collection. Track slots may be empty
// (nil), which the flat format preserves through its track offset table.
//
// The package mirrors only the surface the flat buffer needs: scalar getters
// and setters, per-index track and V0 access, and the add/set mutation calls
// used while reconstructing into a fresh event.
package esd
