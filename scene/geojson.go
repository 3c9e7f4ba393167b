package scene

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LoadFootprintsGeoJSON reads the Polygon and MultiPolygon features of a
// GeoJSON FeatureCollection as footprints spanning z in [zMin, zMax].
// Feature coordinates are taken as grid x, y. The "name" property, when
// present, names the footprint.
func LoadFootprintsGeoJSON(filename string, zMin, zMax int) ([]Footprint, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	footprints, err := ParseFootprintsGeoJSON(data, zMin, zMax)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	log.Printf("   ✅ Loaded %d footprints from %s\n", len(footprints), filepath.Base(filename))
	return footprints, nil
}

// ParseFootprintsGeoJSON is LoadFootprintsGeoJSON on an in-memory document.
func ParseFootprintsGeoJSON(data []byte, zMin, zMax int) ([]Footprint, error) {
	featureCollection, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, err
	}

	var footprints []Footprint
	for i, feature := range featureCollection.Features {
		name := feature.Properties.MustString("name", fmt.Sprintf("feature-%d", i))

		switch geometry := feature.Geometry.(type) {
		case orb.Polygon:
			footprints = append(footprints, Footprint{Name: name, Polygon: geometry, ZMin: zMin, ZMax: zMax})
		case orb.MultiPolygon:
			for j, polygon := range geometry {
				footprints = append(footprints, Footprint{
					Name:    fmt.Sprintf("%s-%d", name, j),
					Polygon: polygon,
					ZMin:    zMin,
					ZMax:    zMax,
				})
			}
		case nil:
			log.Printf("⚠️  Skipping %s: feature has no geometry\n", name)
		default:
			log.Printf("⚠️  Skipping %s: unsupported geometry %s\n", name, feature.Geometry.GeoJSONType())
		}
	}
	return footprints, nil
}
