package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_SamePointIsZero(t *testing.T) {
	p := Point{Lat: -34.6037, Lng: -58.3816}
	assert.Equal(t, 0.0, DistanceKm(p, p))
}

func TestDistanceKm_Symmetric(t *testing.T) {
	buenosAires := Point{Lat: -34.6037, Lng: -58.3816}
	cordoba := Point{Lat: -31.4201, Lng: -64.1888}

	assert.Equal(t, DistanceKm(buenosAires, cordoba), DistanceKm(cordoba, buenosAires))
	assert.InDelta(t, 646, DistanceKm(buenosAires, cordoba), 5)
}

func TestDistanceKm_OneDegreeAtEquator(t *testing.T) {
	origin := Point{}

	east := DistanceKm(origin, Point{Lat: 0, Lng: 1})
	north := DistanceKm(origin, Point{Lat: 1, Lng: 0})

	assert.InDelta(t, 111.19, east, 0.01)
	assert.InDelta(t, 111.19, north, 0.01)
}

func TestDistanceKm_Antipodes(t *testing.T) {
	d := DistanceKm(Point{Lat: 0, Lng: 0}, Point{Lat: 0, Lng: 180})
	assert.InDelta(t, 20015.09, d, 0.1)
}

func TestPoint_Valid(t *testing.T) {
	assert.True(t, Point{Lat: 90, Lng: -180}.Valid())
	assert.False(t, Point{Lat: 91, Lng: 0}.Valid())
	assert.False(t, Point{Lat: 0, Lng: 181}.Valid())
}
