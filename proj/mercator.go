package proj

import "math"

// Constants for Web Mercator projection
const (
	// MaxZoom is the largest zoom level accepted. Every tile index of a
	// valid grid fits in an int32.
	MaxZoom = 30
	// MaxLatitude is the north edge of tile (0, 0), atan(sinh(π)) in degrees.
	MaxLatitude = 85.05112877980659
	// EarthRadius is the sphere radius of EPSG:3857 in meters.
	EarthRadius = 6378137.0
	// TileSize is the edge length of a tile in pixels.
	TileSize = 256

	degToRad = math.Pi / 180.0
	radToDeg = 180.0 / math.Pi

	// originShift is half the circumference of the projected world in meters.
	originShift = math.Pi * EarthRadius

	// Positions beyond ±2^53 cannot be floored to an exact int.
	maxIndex = 1 << 53
)

// pow2 holds 2^z for the zoom levels 0..MaxZoom.
var pow2 = func() (p [MaxZoom + 1]float64) {
	for z := range p {
		p[z] = float64(uint64(1) << uint(z))
	}
	return p
}()

// LonLatToTile converts WGS84 coordinates to the tile containing them at
// the specified zoom level.
//
// Parameters:
//   - lon: Longitude in degrees. Values outside [-180, 180] are not wrapped;
//     they extrapolate to x < 0 or x >= 2^zoom.
//   - lat: Latitude in degrees, strictly between -90 and 90. Values beyond
//     ±MaxLatitude extrapolate to y < 0 or y >= 2^zoom.
//   - zoom: Zoom level (0-30)
//
// Returns:
//   - x: Tile X index, increasing eastward
//   - y: Tile Y index, increasing southward
//   - err: a *DomainError wrapping ErrInvalidZoom, ErrPoleLatitude,
//     ErrInvalidLongitude or ErrOutOfRange
//
// Use WrapTileX and ClampTileY to turn an extrapolated result into a tile
// that exists.
func LonLatToTile(lon, lat float64, zoom int) (x, y int, err error) {
	const op = "LonLatToTile"
	fx, fy, err := lonLatToTileFloat(op, lon, lat, zoom)
	if err != nil {
		return 0, 0, err
	}
	// |fy| stays below 2^33 for any latitude short of the poles.
	if math.Abs(fx) > maxIndex {
		return 0, 0, domainErr(op, "lon", lon, ErrOutOfRange)
	}
	return int(math.Floor(fx)), int(math.Floor(fy)), nil
}

// LonLatToTileFloat converts WGS84 coordinates to fractional tile
// coordinates at the specified zoom level. The integer part is the tile
// returned by LonLatToTile, the fraction is the position inside it.
// Errors are the same as for LonLatToTile, except that ErrOutOfRange is
// only reported for positions that overflow float64.
func LonLatToTileFloat(lon, lat float64, zoom int) (x, y float64, err error) {
	return lonLatToTileFloat("LonLatToTileFloat", lon, lat, zoom)
}

func lonLatToTileFloat(op string, lon, lat float64, zoom int) (x, y float64, err error) {
	if err := checkZoom(op, zoom); err != nil {
		return 0, 0, err
	}
	if math.IsNaN(lat) || lat >= 90 || lat <= -90 {
		return 0, 0, domainErr(op, "lat", lat, ErrPoleLatitude)
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return 0, 0, domainErr(op, "lon", lon, ErrInvalidLongitude)
	}

	n := pow2[zoom]
	x = n * (lon + 180) / 360

	latRad := lat * degToRad
	y = n * (1 - math.Log(math.Tan(latRad)+1/math.Cos(latRad))/math.Pi) / 2

	if math.IsInf(x, 0) {
		return 0, 0, domainErr(op, "lon", lon, ErrOutOfRange)
	}
	// tan and sec cancel to zero or below within an ulp of the south pole.
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, 0, domainErr(op, "lat", lat, ErrPoleLatitude)
	}
	return x, y, nil
}

// TileToLonLat converts a tile to the WGS84 coordinates of its top-left
// (north-west) corner.
//
// Any x and y are accepted. Indices outside [0, 2^zoom) extrapolate: the
// longitude continues linearly past ±180 and the latitude approaches ±90.
// The only error is a *DomainError wrapping ErrInvalidZoom.
func TileToLonLat(x, y, zoom int) (lon, lat float64, err error) {
	if err := checkZoom("TileToLonLat", zoom); err != nil {
		return 0, 0, err
	}
	lon, lat = inverse(float64(x), float64(y), pow2[zoom])
	return lon, lat, nil
}

// TileFloatToLonLat is the inverse of LonLatToTileFloat.
// Passing x+0.5, y+0.5 yields the center of tile (x, y).
func TileFloatToLonLat(x, y float64, zoom int) (lon, lat float64, err error) {
	const op = "TileFloatToLonLat"
	if err := checkZoom(op, zoom); err != nil {
		return 0, 0, err
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, 0, domainErr(op, "x", x, ErrOutOfRange)
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, 0, domainErr(op, "y", y, ErrOutOfRange)
	}
	lon, lat = inverse(x, y, pow2[zoom])
	return lon, lat, nil
}

func inverse(x, y, n float64) (lon, lat float64) {
	lon = x/n*360 - 180
	lat = math.Atan(math.Sinh(math.Pi*(1-2*y/n))) * radToDeg
	return lon, lat
}

// NumTiles returns the number of tiles per axis, 2^zoom, or 0 if zoom is
// out of range.
func NumTiles(zoom int) int {
	if zoom < 0 || zoom > MaxZoom {
		return 0
	}
	return 1 << uint(zoom)
}

// ValidZoom returns a *DomainError wrapping ErrInvalidZoom unless zoom is
// within [0, MaxZoom].
func ValidZoom(zoom int) error {
	return checkZoom("ValidZoom", zoom)
}

func checkZoom(op string, zoom int) error {
	if zoom < 0 || zoom > MaxZoom {
		return domainErr(op, "zoom", float64(zoom), ErrInvalidZoom)
	}
	return nil
}

// WrapLongitude maps lon into [-180, 180).
func WrapLongitude(lon float64) float64 {
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	if lon >= 360 {
		lon -= 360
	}
	return lon - 180
}

// ClampLatitude limits lat to the latitudes covered by the tile grid.
func ClampLatitude(lat float64) float64 {
	return math.Max(-MaxLatitude, math.Min(MaxLatitude, lat))
}

// WrapTileX wraps x around the antimeridian into [0, 2^zoom).
// Wrapping x is natural because the choice of x = 0 is arbitrary.
// For an invalid zoom x is returned unchanged.
func WrapTileX(x, zoom int) int {
	m := NumTiles(zoom)
	if m == 0 {
		return x
	}
	x %= m
	if x < 0 {
		x += m
	}
	return x
}

// ClampTileY limits y to [0, 2^zoom - 1]. Rows do not wrap.
// For an invalid zoom y is returned unchanged.
func ClampTileY(y, zoom int) int {
	m := NumTiles(zoom)
	if m == 0 {
		return y
	}
	return max(0, min(m-1, y))
}
