package gridmap

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/polimap/district"
	"github.com/katalvlaran/polimap/geometry"
	"github.com/katalvlaran/polimap/regiongraph"
)

// New validates and deep-copies values.
//
// Errors:
//   - ErrEmptyGrid, ErrNonRectangular, ErrBadCellSize.
func New(values [][]int64, opts Options) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.CellSize <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrBadCellSize, opts.CellSize)
	}
	h, w := len(values), len(values[0])
	cells := make([][]int64, h)
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		cells[y] = append([]int64(nil), row...)
	}

	offsets := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return &Grid{Width: w, Height: h, Populations: cells, opts: opts, offsets: offsets}, nil
}

// InBounds reports whether (x,y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// IsLand reports whether (x,y) is a county cell.
func (g *Grid) IsLand(x, y int) bool {
	return g.InBounds(x, y) && g.Populations[y][x] >= g.opts.LandThreshold
}

// RegionID returns the county ID of cell (x,y).
func RegionID(x, y int) string {
	return strconv.Itoa(x) + "," + strconv.Itoa(y)
}

// Regions lists the county cells in row-major order.
func (g *Grid) Regions() []regiongraph.Region {
	var out []regiongraph.Region
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.IsLand(x, y) {
				out = append(out, regiongraph.Region{ID: RegionID(x, y), Population: g.Populations[y][x]})
			}
		}
	}

	return out
}

// Path returns the square outline of cell (x,y) in path data.
func (g *Grid) Path(x, y int) string {
	s := g.opts.CellSize
	x0, y0 := float64(x)*s, float64(y)*s
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

	return "M" + f(x0) + " " + f(y0) + " H" + f(x0+s) + " V" + f(y0+s) + " H" + f(x0) + " Z"
}

// Paths maps every county ID to its outline.
func (g *Grid) Paths() map[string]string {
	out := make(map[string]string)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.IsLand(x, y) {
				out[RegionID(x, y)] = g.Path(x, y)
			}
		}
	}

	return out
}

// Adjacency links county cells according to the grid connectivity.
// Isolated counties are present with no neighbours.
func (g *Grid) Adjacency() geometry.Adjacency {
	adj := geometry.NewAdjacency()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.IsLand(x, y) {
				continue
			}
			id := RegionID(x, y)
			adj.AddRegion(id)
			for _, d := range g.offsets {
				if nx, ny := x+d[0], y+d[1]; g.IsLand(nx, ny) {
					adj.Add(id, RegionID(nx, ny))
				}
			}
		}
	}

	return adj
}

// Islands groups county cells into connected land masses. Islands are
// ordered by their first cell in row-major order; cells within an island are
// in breadth-first order.
func (g *Grid) Islands() [][]string {
	seen := make([]bool, g.Width*g.Height)
	var out [][]string
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.IsLand(x, y) || seen[y*g.Width+x] {
				continue
			}
			seen[y*g.Width+x] = true
			queue := [][2]int{{x, y}}
			var island []string
			for qi := 0; qi < len(queue); qi++ {
				c := queue[qi]
				island = append(island, RegionID(c[0], c[1]))
				for _, d := range g.offsets {
					nx, ny := c[0]+d[0], c[1]+d[1]
					if !g.IsLand(nx, ny) || seen[ny*g.Width+nx] {
						continue
					}
					seen[ny*g.Width+nx] = true
					queue = append(queue, [2]int{nx, ny})
				}
			}
			out = append(out, island)
		}
	}

	return out
}

// Request packages the grid for district.Generator. Adjacency follows the
// grid's connectivity; corner contact in Paths is not used for Conn4.
func (g *Grid) Request(stateID string, districts int) district.Request {
	return district.Request{
		StateID:   stateID,
		Regions:   g.Regions(),
		Paths:     g.Paths(),
		Adjacency: g.Adjacency(),
		Districts: districts,
	}
}
