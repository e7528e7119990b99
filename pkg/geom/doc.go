// Package geom defines the value geometry types for domekit and the
// pass-scoped vertex canonicalizer that merges coincident vertices
// produced independently by adjacent base faces.
package geom
