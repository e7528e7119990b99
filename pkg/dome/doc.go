// Package dome generates hemispherical geodesic lattice meshes. A dome is
// parametrized by radius, Class-I subdivision frequency, a base-shape
// variant, and a face-color palette; Generate turns those into a
// deduplicated triangle mesh with per-face colors and wireframe edges.
package dome
