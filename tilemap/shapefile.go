package tilemap

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jonas-p/go-shp"

	"github.com/OpticalFlyer/tilenames/proj"
)

// ShapeCover is the range of tiles covering the bounding box of one shape.
type ShapeCover struct {
	Index int // record number in the shapefile, starting at 0
	Range TileRange
}

// CoverShapefile returns the tile range covering each shape of a shapefile
// at the given zoom. Coordinates must be longitude/latitude degrees
// (EPSG:4326).
//
// Null shapes are skipped and logged at debug level, as are shapes whose
// stored bounding box has MinX > MaxX. Writers never produce such a box, so
// it only turns up in malformed files.
func CoverShapefile(filename string, zoom int) ([]ShapeCover, error) {
	if err := proj.ValidZoom(zoom); err != nil {
		return nil, err
	}

	r, err := shp.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open shapefile %s: %w", filename, err)
	}
	defer r.Close()

	var covers []ShapeCover
	for r.Next() {
		n, shape := r.Shape()
		if _, ok := shape.(*shp.Null); ok || shape == nil {
			slog.Debug("skipping null shape", "file", filename, "index", n)
			continue
		}

		box := shape.BBox()
		rng, err := BoundToTileRange(Bound{West: box.MinX, South: box.MinY, East: box.MaxX, North: box.MaxY}, zoom)
		if errors.Is(err, ErrAntimeridian) {
			slog.Debug("skipping shape across the antimeridian", "file", filename, "index", n)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("shape %d in %s: %w", n, filename, err)
		}
		covers = append(covers, ShapeCover{Index: n, Range: rng})
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("read shapefile %s: %w", filename, err)
	}

	slog.Info("covered shapefile", "file", filename, "zoom", zoom, "shapes", len(covers))
	return covers, nil
}
