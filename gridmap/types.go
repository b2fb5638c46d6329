package gridmap

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridmap: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridmap: all rows must have the same length")
	// ErrBadCellSize indicates a non-positive cell size.
	ErrBadCellSize = errors.New("gridmap: cell size must be positive")
)

// Connectivity selects which neighbouring cells border each other.
type Connectivity int

const (
	// Conn4 links orthogonal neighbours: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 also links diagonal neighbours.
	Conn8
)

// Options tunes grid interpretation.
type Options struct {
	// LandThreshold is the minimum value of a county cell.
	LandThreshold int64
	// Conn chooses 4- or 8-neighbour adjacency.
	Conn Connectivity
	// CellSize is the side of one square in path units.
	CellSize float64
}

// DefaultOptions returns LandThreshold=1, Conn8 and CellSize=10.
func DefaultOptions() Options {
	return Options{LandThreshold: 1, Conn: Conn8, CellSize: 10}
}

// Grid is an immutable population grid; Populations[y][x] holds the input.
type Grid struct {
	Width, Height int
	Populations   [][]int64
	opts          Options
	offsets       [][2]int
}
