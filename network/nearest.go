package network

import (
	"errors"
	"math"

	"github.com/tidwall/rtree"
)

// ErrNoLocatedStops is returned when no stop in the index carries coordinates.
var ErrNoLocatedStops = errors.New("no stops with coordinates")

const earthRadiusKM = 6371.0

// nearestCandidates is how many R-tree hits are re-ranked by great-circle
// distance.
const nearestCandidates = 8

// stopLocator is an R-tree of stop positions keyed by [lon*kx, lat], where kx
// is the cosine of the stops' mean latitude. The scaling makes planar
// distance in the tree track ground distance.
type stopLocator struct {
	tree  rtree.RTreeG[string]
	kx    float64
	count int
}

func newStopLocator(stops map[string]Stop) *stopLocator {
	loc := &stopLocator{kx: 1}
	var latSum float64
	for _, s := range stops {
		if s.HasLocation() {
			latSum += s.Latitude
			loc.count++
		}
	}
	if loc.count == 0 {
		return loc
	}
	loc.kx = math.Cos(latSum / float64(loc.count) * math.Pi / 180)
	for name, s := range stops {
		if !s.HasLocation() {
			continue
		}
		pt := loc.point(s.Latitude, s.Longitude)
		loc.tree.Insert(pt, pt, name)
	}
	return loc
}

func (l *stopLocator) point(lat, lon float64) [2]float64 {
	return [2]float64{lon * l.kx, lat}
}

// NearestStop returns the stop closest to (lat, lon) and its great-circle
// distance in km.
func (idx *Index) NearestStop(lat, lon float64) (Stop, float64, error) {
	if idx.locator == nil || idx.locator.count == 0 {
		return Stop{}, 0, ErrNoLocatedStops
	}
	target := idx.locator.point(lat, lon)
	candidates := make([]string, 0, nearestCandidates)
	idx.locator.tree.Nearby(
		rtree.BoxDist[float64, string](target, target, nil),
		func(min, max [2]float64, name string, dist float64) bool {
			candidates = append(candidates, name)
			return len(candidates) < nearestCandidates
		},
	)

	var best Stop
	bestKM := math.Inf(1)
	for _, name := range candidates {
		s := idx.stops[name]
		km := HaversineKM(lat, lon, s.Latitude, s.Longitude)
		if km < bestKM || (km == bestKM && s.Name < best.Name) {
			best, bestKM = s, km
		}
	}
	return best, bestKM, nil
}

// HaversineKM is the great-circle distance between two points.
func HaversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(d float64) float64 { return d * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKM * math.Asin(math.Sqrt(a))
}
