package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// Level is a tile map stored as JSON. Layer 0 holds walls: any non-zero cell
// is solid. Entities are placed in world units.
type Level struct {
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	TileSize float64  `json:"tile_size"`
	Layers   [][]int  `json:"layers"`
	SpawnX   float64  `json:"spawn_x"`
	SpawnY   float64  `json:"spawn_y"`
	Entities []Entity `json:"entities,omitempty"`
}

type Entity struct {
	Type  string         `json:"type"`
	X     float64        `json:"x"`
	Y     float64        `json:"y"`
	Props map[string]any `json:"props,omitempty"`
}

// Rect is a wall box in world units.
type Rect struct {
	X, Y, W, H float64
}

const DefaultTileSize = 96

// Load reads a level from disk when name points at an existing file, and
// from the embedded levels otherwise.
func Load(name string) (*Level, error) {
	if name == "" {
		name = "escape.json"
	}
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	data, err := os.ReadFile(name)
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, name)
		if err != nil {
			return nil, fmt.Errorf("read level: %w", err)
		}
	}
	return Parse(data)
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("level: invalid size %dx%d", lvl.Width, lvl.Height)
	}
	if lvl.TileSize <= 0 {
		lvl.TileSize = DefaultTileSize
	}
	for i, layer := range lvl.Layers {
		if len(layer) != lvl.Width*lvl.Height {
			return nil, fmt.Errorf("level: layer %d has %d cells, want %d", i, len(layer), lvl.Width*lvl.Height)
		}
	}
	return &lvl, nil
}

// Bounds returns the level size in world units.
func (l *Level) Bounds() (float64, float64) {
	return float64(l.Width) * l.TileSize, float64(l.Height) * l.TileSize
}

// Walls merges horizontal runs of solid cells on layer 0 into boxes.
func (l *Level) Walls() []Rect {
	if l == nil || len(l.Layers) == 0 {
		return nil
	}
	layer := l.Layers[0]
	var out []Rect
	for y := 0; y < l.Height; y++ {
		start := -1
		for x := 0; x <= l.Width; x++ {
			solid := x < l.Width && layer[y*l.Width+x] != 0
			if solid && start < 0 {
				start = x
			}
			if !solid && start >= 0 {
				out = append(out, Rect{
					X: float64(start) * l.TileSize,
					Y: float64(y) * l.TileSize,
					W: float64(x-start) * l.TileSize,
					H: l.TileSize,
				})
				start = -1
			}
		}
	}
	return out
}

// PropFloat reads a numeric prop, falling back to def.
func (e Entity) PropFloat(key string, def float64) float64 {
	switch v := e.Props[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return def
}

// PropString reads a string prop, falling back to def.
func (e Entity) PropString(key, def string) string {
	if v, ok := e.Props[key].(string); ok && v != "" {
		return v
	}
	return def
}
