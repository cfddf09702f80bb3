package sim

// Dir is one of the four movement directions. Right/Left and Down/Up form
// opposite pairs; Reverse, Horizontal and Vector are the only operations
// callers should rely on (the numeric values carry no meaning).
type Dir int

const (
	DirRight Dir = iota
	DirDown
	DirLeft
	DirUp
	NumDirs = 4
)

// String returns the direction name.
func (d Dir) String() string {
	switch d {
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirUp:
		return "Up"
	default:
		return "Unknown"
	}
}

// Reverse returns the opposite direction.
func (d Dir) Reverse() Dir {
	switch d {
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirDown
	}
}

// Horizontal reports whether the direction moves along the x axis.
func (d Dir) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// Vector returns the unit movement vector for the direction.
func (d Dir) Vector() Point {
	switch d {
	case DirRight:
		return Point{X: 1}
	case DirDown:
		return Point{Y: 1}
	case DirLeft:
		return Point{X: -1}
	case DirUp:
		return Point{Y: -1}
	default:
		return Point{}
	}
}

// Point is a 2D integer coordinate, used for both pixel and tile positions.
// Callers track which space is in play; PixelToTile converts between them.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by s.
func (p Point) Mul(s int) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// SquaredDist returns the squared Euclidean distance to q.
func (p Point) SquaredDist(q Point) int {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return dx*dx + dy*dy
}

// NearEqual reports whether both components are within tolerance of q.
func (p Point) NearEqual(q Point, tolerance int) bool {
	return abs(q.X-p.X) <= tolerance && abs(q.Y-p.Y) <= tolerance
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
