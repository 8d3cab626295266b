package maps

import "errors"

// BoundingBox derives a padded box from a route geometry of (lon, lat) pairs.
// Padding is symmetric in degrees, not distance-normalized; that matches the
// upstream query semantics and is good enough for corridor-sized boxes.
func BoundingBox(coords [][]float64, pad float64) (Box, error) {
	var minLat, minLon, maxLat, maxLon float64

	seen := false
	for _, c := range coords {
		// Malformed elements are skipped rather than trusted to index.
		if len(c) < 2 {
			continue
		}

		lon, lat := c[0], c[1]
		if !seen {
			minLat, maxLat = lat, lat
			minLon, maxLon = lon, lon
			seen = true
			continue
		}

		if lat < minLat {
			minLat = lat
		}
		if lat > maxLat {
			maxLat = lat
		}
		if lon < minLon {
			minLon = lon
		}
		if lon > maxLon {
			maxLon = lon
		}
	}

	if !seen {
		return Box{}, errors.New("no usable coordinates")
	}

	return Box{
		MinLat: minLat - pad,
		MinLon: minLon - pad,
		MaxLat: maxLat + pad,
		MaxLon: maxLon + pad,
	}, nil
}

func IsValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
