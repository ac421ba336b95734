package proj

import "math"

// LonLatToMeters converts WGS84 coordinates to Web Mercator (EPSG:3857)
// coordinates in meters.
//
// Returns a *DomainError wrapping ErrPoleLatitude or ErrInvalidLongitude
// for inputs the projection cannot represent.
func LonLatToMeters(lon, lat float64) (x, y float64, err error) {
	const op = "LonLatToMeters"
	if math.IsNaN(lat) || lat >= 90 || lat <= -90 {
		return 0, 0, domainErr(op, "lat", lat, ErrPoleLatitude)
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return 0, 0, domainErr(op, "lon", lon, ErrInvalidLongitude)
	}
	x = lon * degToRad * EarthRadius
	y = math.Log(math.Tan(math.Pi/4+lat*degToRad/2)) * EarthRadius
	return x, y, nil
}

// MetersToLonLat converts Web Mercator (EPSG:3857) coordinates in meters
// to WGS84 coordinates.
func MetersToLonLat(x, y float64) (lon, lat float64) {
	lon = x / EarthRadius * radToDeg
	lat = (2*math.Atan(math.Exp(y/EarthRadius)) - math.Pi/2) * radToDeg
	return lon, lat
}

// MetersToTileFloat converts Web Mercator (EPSG:3857) coordinates in meters
// to fractional tile coordinates at the specified zoom level.
//
// Parameters:
//   - x: X coordinate in meters (-20037508.34 to 20037508.34)
//   - y: Y coordinate in meters (-20037508.34 to 20037508.34)
//   - zoom: Zoom level (0-30)
//
// Returns:
//   - tileX: Tile X coordinate (fractional)
//   - tileY: Tile Y coordinate (fractional)
func MetersToTileFloat(x, y float64, zoom int) (tileX, tileY float64, err error) {
	if err := checkZoom("MetersToTileFloat", zoom); err != nil {
		return 0, 0, err
	}

	// Normalize coordinates to 0-1 range
	normalizedX := (x + originShift) / (2 * originShift)
	normalizedY := 1 - ((y + originShift) / (2 * originShift))

	n := pow2[zoom]
	return normalizedX * n, normalizedY * n, nil
}

// GroundResolution returns the length in meters covered by one pixel of a
// TileSize tile at the given latitude and zoom level.
func GroundResolution(lat float64, zoom int) (float64, error) {
	const op = "GroundResolution"
	if err := checkZoom(op, zoom); err != nil {
		return 0, err
	}
	if math.IsNaN(lat) || lat >= 90 || lat <= -90 {
		return 0, domainErr(op, "lat", lat, ErrPoleLatitude)
	}
	// 2πR / (TileSize * 2^z), reduced by cos(lat).
	return math.Cos(lat*degToRad) * 2 * originShift / (TileSize * pow2[zoom]), nil
}
