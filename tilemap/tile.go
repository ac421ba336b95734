package tilemap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang/geo/s2"
	"github.com/paulmach/orb/maptile"

	"github.com/OpticalFlyer/tilenames/proj"
)

// TileSize is the size of map tiles in pixels
const TileSize = proj.TileSize

// ErrInvalidTile is returned for tiles outside the grid of their zoom level.
var ErrInvalidTile = errors.New("tile is outside the grid")

// Tile uniquely identifies a map tile
type Tile struct {
	Zoom int
	X    int
	Y    int
}

// Pixel is a position inside a tile, both coordinates in [0, TileSize).
type Pixel struct {
	X, Y int
}

// NewTile returns the tile containing lon/lat at the given zoom level.
// It does not wrap or clamp; see Normalize.
func NewTile(lon, lat float64, zoom int) (Tile, error) {
	x, y, err := proj.LonLatToTile(lon, lat, zoom)
	if err != nil {
		return Tile{}, err
	}
	return Tile{Zoom: zoom, X: x, Y: y}, nil
}

// PixelAt returns the tile containing lon/lat and the pixel offset from its
// top-left corner.
func PixelAt(lon, lat float64, zoom int) (Tile, Pixel, error) {
	t, err := NewTile(lon, lat, zoom)
	if err != nil {
		return Tile{}, Pixel{}, err
	}
	fx, fy, err := proj.LonLatToTileFloat(lon, lat, zoom)
	if err != nil {
		return Tile{}, Pixel{}, err
	}
	p := Pixel{
		X: min(TileSize-1, int(TileSize*(fx-float64(t.X)))),
		Y: min(TileSize-1, int(TileSize*(fy-float64(t.Y)))),
	}
	return t, p, nil
}

// String formats t as "z/x/y", the path of the tile on an XYZ server.
func (t Tile) String() string {
	return strconv.Itoa(t.Zoom) + "/" + strconv.Itoa(t.X) + "/" + strconv.Itoa(t.Y)
}

// ParseTile parses a tile in "z/x/y" form. A trailing file extension such
// as ".png" is ignored. The zoom must be valid; x and y may be outside the grid.
func ParseTile(s string) (Tile, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return Tile{}, fmt.Errorf("parse tile %q: want z/x/y", s)
	}
	if i := strings.IndexByte(parts[2], '.'); i >= 0 {
		parts[2] = parts[2][:i]
	}

	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Tile{}, fmt.Errorf("parse tile %q: %w", s, err)
		}
		v[i] = n
	}
	if err := proj.ValidZoom(v[0]); err != nil {
		return Tile{}, fmt.Errorf("parse tile %q: %w", s, err)
	}
	return Tile{Zoom: v[0], X: v[1], Y: v[2]}, nil
}

// Valid reports whether the zoom level is supported and X and Y lie inside
// its grid.
func (t Tile) Valid() bool {
	n := proj.NumTiles(t.Zoom)
	return n > 0 && t.X >= 0 && t.X < n && t.Y >= 0 && t.Y < n
}

// Normalize wraps X around the antimeridian and clamps Y to the grid.
func (t Tile) Normalize() Tile {
	return Tile{Zoom: t.Zoom, X: proj.WrapTileX(t.X, t.Zoom), Y: proj.ClampTileY(t.Y, t.Zoom)}
}

// Parent returns the tile one zoom level up that contains t.
// The parent of a zoom 0 tile is the tile itself.
func (t Tile) Parent() Tile {
	if t.Zoom <= 0 {
		return t
	}
	// Arithmetic shift floors, so extrapolated tiles keep their parents.
	return Tile{Zoom: t.Zoom - 1, X: t.X >> 1, Y: t.Y >> 1}
}

// Children returns the four tiles t splits into one zoom level down:
//
//	+----------+----------+
//	| [0]      | [1]      |
//	+----------+----------+
//	| [2]      | [3]      |
//	+----------+----------+
//
// Children of a tile at proj.MaxZoom lie at an unsupported zoom level.
func (t Tile) Children() [4]Tile {
	x, y, z := 2*t.X, 2*t.Y, t.Zoom+1
	return [4]Tile{
		{Zoom: z, X: x, Y: y},
		{Zoom: z, X: x + 1, Y: y},
		{Zoom: z, X: x, Y: y + 1},
		{Zoom: z, X: x + 1, Y: y + 1},
	}
}

// NorthWest returns the coordinates of the top-left corner of t.
func (t Tile) NorthWest() (lon, lat float64, err error) {
	return proj.TileToLonLat(t.X, t.Y, t.Zoom)
}

// Center returns the coordinates of the middle of t.
func (t Tile) Center() (lon, lat float64, err error) {
	return proj.TileFloatToLonLat(float64(t.X)+0.5, float64(t.Y)+0.5, t.Zoom)
}

// Bound returns the area covered by t.
func (t Tile) Bound() (Bound, error) {
	west, north, err := proj.TileToLonLat(t.X, t.Y, t.Zoom)
	if err != nil {
		return Bound{}, err
	}
	east, south, err := proj.TileToLonLat(t.X+1, t.Y+1, t.Zoom)
	if err != nil {
		return Bound{}, err
	}
	return Bound{West: west, South: south, East: east, North: north}, nil
}

// Diagonal returns the great-circle distance in meters between the
// north-west and south-east corners of t.
func (t Tile) Diagonal() (float64, error) {
	b, err := t.Bound()
	if err != nil {
		return 0, err
	}
	nw := s2.LatLngFromDegrees(b.North, b.West)
	se := s2.LatLngFromDegrees(b.South, b.East)
	return float64(nw.Distance(se)) * proj.EarthRadius, nil
}

// MapTile converts t to an orb maptile.
// It fails with ErrInvalidTile unless t is Valid.
func (t Tile) MapTile() (maptile.Tile, error) {
	if !t.Valid() {
		return maptile.Tile{}, fmt.Errorf("tile %s: %w", t, ErrInvalidTile)
	}
	return maptile.New(uint32(t.X), uint32(t.Y), maptile.Zoom(t.Zoom)), nil
}

// FromMapTile converts an orb maptile to a Tile.
func FromMapTile(mt maptile.Tile) Tile {
	return Tile{Zoom: int(mt.Z), X: int(mt.X), Y: int(mt.Y)}
}
