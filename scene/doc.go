// Package scene builds occupancy grids for maze3d from obstacle
// descriptions: axis-aligned boxes, extruded 2D footprints (inline or from
// GeoJSON), HCL scene files, JSON snapshots and seeded random fill.
package scene
