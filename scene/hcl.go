package scene

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/paulmach/orb"
	"github.com/zclconf/go-cty/cty"

	"maze3d"
)

// hclSceneFile is the top-level structure of a scene file. The grid block is
// decoded first so the obstacle blocks can refer to grid.x, grid.y and
// grid.z.
type hclSceneFile struct {
	Grid   hclGrid  `hcl:"grid,block"`
	Remain hcl.Body `hcl:",remain"`
}

type hclGrid struct {
	Size      []int    `hcl:"size"`
	Adjacency *int     `hcl:"adjacency,optional"`
	Simplify  *float64 `hcl:"simplify,optional"`
}

type hclObstacles struct {
	Boxes      []hclBox       `hcl:"box,block"`
	Footprints []hclFootprint `hcl:"footprint,block"`
	GeoJSON    []hclGeoJSON   `hcl:"geojson,block"`
}

type hclBox struct {
	Name  string `hcl:"name,label"`
	From  []int  `hcl:"from"`
	To    []int  `hcl:"to"`
	Clear bool   `hcl:"clear,optional"`
}

type hclFootprint struct {
	Name   string      `hcl:"name,label"`
	Points [][]float64 `hcl:"points"`
	Z      []int       `hcl:"z"`
}

type hclGeoJSON struct {
	Name string `hcl:"name,label"`
	Path string `hcl:"path"`
	Z    []int  `hcl:"z"`
}

// LoadHCL parses a scene file from disk. Relative geojson paths resolve
// against the file's directory.
func LoadHCL(filename string) (*Scene, error) {
	log.Printf("📂 Loading scene from %s...\n", filename)
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return decodeScene(file.Body, filename)
}

// ParseHCL parses a scene from source bytes; filename is used in diagnostics
// and as the base for relative geojson paths.
func ParseHCL(src []byte, filename string) (*Scene, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return decodeScene(file.Body, filename)
}

func decodeScene(body hcl.Body, filename string) (*Scene, error) {
	var parsedFile hclSceneFile
	if diags := gohcl.DecodeBody(body, nil, &parsedFile); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	size, err := triple("grid.size", parsedFile.Grid.Size)
	if err != nil {
		return nil, err
	}
	scene := &Scene{
		Size:      size,
		Adjacency: maze3d.FaceAdjacent,
	}
	if parsedFile.Grid.Adjacency != nil {
		scene.Adjacency = maze3d.Adjacency(*parsedFile.Grid.Adjacency)
	}
	if parsedFile.Grid.Simplify != nil {
		scene.SimplifyTolerance = *parsedFile.Grid.Simplify
	}

	var obstacles hclObstacles
	if diags := gohcl.DecodeBody(parsedFile.Remain, gridEvalContext(size), &obstacles); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	for _, block := range obstacles.Boxes {
		from, err := triple(fmt.Sprintf("box %q from", block.Name), block.From)
		if err != nil {
			return nil, err
		}
		to, err := triple(fmt.Sprintf("box %q to", block.Name), block.To)
		if err != nil {
			return nil, err
		}
		scene.Boxes = append(scene.Boxes, Box{
			Name:  block.Name,
			Min:   maze3d.Coord(from),
			Max:   maze3d.Coord(to),
			Clear: block.Clear,
		})
	}

	for _, block := range obstacles.Footprints {
		zMin, zMax, err := zRange(fmt.Sprintf("footprint %q", block.Name), block.Z)
		if err != nil {
			return nil, err
		}
		vertices := make([]orb.Point, 0, len(block.Points))
		for _, point := range block.Points {
			if len(point) != 2 {
				return nil, fmt.Errorf("%w: footprint %q has a point with %d coordinates, want 2",
					maze3d.ErrInvalidConfiguration, block.Name, len(point))
			}
			vertices = append(vertices, orb.Point{point[0], point[1]})
		}
		if len(vertices) < 3 {
			return nil, fmt.Errorf("%w: footprint %q needs at least 3 points",
				maze3d.ErrInvalidConfiguration, block.Name)
		}
		scene.Footprints = append(scene.Footprints, NewFootprint(block.Name, vertices, zMin, zMax))
	}

	for _, block := range obstacles.GeoJSON {
		zMin, zMax, err := zRange(fmt.Sprintf("geojson %q", block.Name), block.Z)
		if err != nil {
			return nil, err
		}
		path := block.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(filepath.Dir(filename), path)
		}
		footprints, err := LoadFootprintsGeoJSON(path, zMin, zMax)
		if err != nil {
			return nil, err
		}
		scene.Footprints = append(scene.Footprints, footprints...)
	}

	log.Printf("   ✅ Scene decoded: size %v, adjacency %d, %d boxes, %d footprints\n",
		scene.Size, scene.Adjacency, len(scene.Boxes), len(scene.Footprints))
	return scene, nil
}

// gridEvalContext exposes the grid size to obstacle expressions.
func gridEvalContext(size [3]int) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"grid": cty.ObjectVal(map[string]cty.Value{
				"x": cty.NumberIntVal(int64(size[0])),
				"y": cty.NumberIntVal(int64(size[1])),
				"z": cty.NumberIntVal(int64(size[2])),
			}),
		},
	}
}

func triple(what string, values []int) ([3]int, error) {
	if len(values) != 3 {
		return [3]int{}, fmt.Errorf("%w: %s has %d values, want 3",
			maze3d.ErrInvalidConfiguration, what, len(values))
	}
	return [3]int{values[0], values[1], values[2]}, nil
}

func zRange(what string, values []int) (int, int, error) {
	if len(values) != 2 {
		return 0, 0, fmt.Errorf("%w: %s z has %d values, want 2",
			maze3d.ErrInvalidConfiguration, what, len(values))
	}
	return values[0], values[1], nil
}
