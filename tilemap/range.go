package tilemap

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/OpticalFlyer/tilenames/proj"
)

var (
	// ErrAntimeridian is returned for a bound whose West edge lies east of
	// its East edge. Split such a bound at ±180 before covering it.
	ErrAntimeridian = errors.New("bound crosses the antimeridian")
	// ErrInvalidBound is returned for a bound with South north of North or
	// with a NaN edge.
	ErrInvalidBound = errors.New("bound is empty or not a number")
)

// edgeTolerance absorbs rounding when a bound edge lies on a tile edge.
const edgeTolerance = 1e-5

// Bound is an area in degrees.
type Bound struct {
	West, South, East, North float64
}

// TileRange defines an inclusive block of tiles at one zoom level
type TileRange struct {
	Zoom       int
	MinX, MaxX int
	MinY, MaxY int
}

// BoundToTileRange returns the tiles needed to cover b at the given zoom.
// Latitudes are clamped to ±proj.MaxLatitude and the range is clamped to the
// grid. Edges are exclusive, so the bound of a tile covers only that tile.
func BoundToTileRange(b Bound, zoom int) (TileRange, error) {
	if err := proj.ValidZoom(zoom); err != nil {
		return TileRange{}, err
	}
	if math.IsNaN(b.West) || math.IsNaN(b.South) || math.IsNaN(b.East) || math.IsNaN(b.North) || b.South > b.North {
		return TileRange{}, fmt.Errorf("bound %v: %w", b, ErrInvalidBound)
	}
	if b.West > b.East {
		return TileRange{}, fmt.Errorf("bound %v: %w", b, ErrAntimeridian)
	}

	// Longitudes past ±180 are clamped by the grid clamp below, keep them finite.
	west := math.Max(-360, math.Min(360, b.West))
	east := math.Max(-360, math.Min(360, b.East))

	minXF, minYF, err := proj.LonLatToTileFloat(west, proj.ClampLatitude(b.North), zoom)
	if err != nil {
		return TileRange{}, err
	}
	maxXF, maxYF, err := proj.LonLatToTileFloat(east, proj.ClampLatitude(b.South), zoom)
	if err != nil {
		return TileRange{}, err
	}

	minX := int(math.Floor(minXF + edgeTolerance))
	minY := int(math.Floor(minYF + edgeTolerance))
	maxX := max(minX, int(math.Ceil(maxXF-edgeTolerance))-1)
	maxY := max(minY, int(math.Ceil(maxYF-edgeTolerance))-1)

	n := proj.NumTiles(zoom)
	return TileRange{
		Zoom: zoom,
		MinX: max(0, min(n-1, minX)),
		MaxX: max(0, min(n-1, maxX)),
		MinY: max(0, min(n-1, minY)),
		MaxY: max(0, min(n-1, maxY)),
	}, nil
}

// Count returns the number of tiles in r.
func (r TileRange) Count() int64 {
	if r.MaxX < r.MinX || r.MaxY < r.MinY {
		return 0
	}
	return int64(r.MaxX-r.MinX+1) * int64(r.MaxY-r.MinY+1)
}

// Contains reports whether t is part of r.
func (r TileRange) Contains(t Tile) bool {
	return t.Zoom == r.Zoom &&
		t.X >= r.MinX && t.X <= r.MaxX &&
		t.Y >= r.MinY && t.Y <= r.MaxY
}

// All yields the tiles of r row by row, west to east and north to south.
func (r TileRange) All() iter.Seq[Tile] {
	return func(yield func(Tile) bool) {
		for ty := r.MinY; ty <= r.MaxY; ty++ {
			for tx := r.MinX; tx <= r.MaxX; tx++ {
				if !yield(Tile{Zoom: r.Zoom, X: tx, Y: ty}) {
					return
				}
			}
		}
	}
}

// Union returns the smallest range containing r and o.
// Both ranges must share a zoom level.
func (r TileRange) Union(o TileRange) (TileRange, error) {
	if r.Zoom != o.Zoom {
		return TileRange{}, fmt.Errorf("union of ranges at zoom %d and %d", r.Zoom, o.Zoom)
	}
	return TileRange{
		Zoom: r.Zoom,
		MinX: min(r.MinX, o.MinX),
		MaxX: max(r.MaxX, o.MaxX),
		MinY: min(r.MinY, o.MinY),
		MaxY: max(r.MaxY, o.MaxY),
	}, nil
}
