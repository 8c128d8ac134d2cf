package roadmap

import (
	"math"

	"github.com/hupe1980/plango/space"
)

// PairKey is an unordered pair of guard ids in canonical (low, high) order.
type PairKey struct {
	A, B ID
}

// MakePairKey builds the canonical key for (a, b).
func MakePairKey(a, b ID) PairKey {
	if a > b {
		a, b = b, a
	}
	return PairKey{A: a, B: b}
}

// InterfaceData is the evidence one guard holds about the interface between
// two of its neighbors. Each side keeps the best dense sample seen so far
// (point) and the sample it was reached from (sigma); side one belongs to
// the lower-id neighbor. d caches the distance between the two points and
// stays +Inf until both sides are present.
type InterfaceData struct {
	point1, sigma1 space.State
	point2, sigma2 space.State
	d              float64
}

// NewInterfaceData returns an empty record.
func NewInterfaceData() *InterfaceData {
	return &InterfaceData{d: math.Inf(1)}
}

// D returns the cached distance between the two sides.
func (ifd *InterfaceData) D() float64 { return ifd.d }

// Point1 returns the lower-id side's support point, or nil.
func (ifd *InterfaceData) Point1() space.State { return ifd.point1 }

// Sigma1 returns the sample the lower-id side was reached from, or nil.
func (ifd *InterfaceData) Sigma1() space.State { return ifd.sigma1 }

// Point2 returns the higher-id side's support point, or nil.
func (ifd *InterfaceData) Point2() space.State { return ifd.point2 }

// Sigma2 returns the sample the higher-id side was reached from, or nil.
func (ifd *InterfaceData) Sigma2() space.State { return ifd.sigma2 }

// HasPoint1 reports whether the lower-id side has been seen.
func (ifd *InterfaceData) HasPoint1() bool { return ifd.point1 != nil }

// HasPoint2 reports whether the higher-id side has been seen.
func (ifd *InterfaceData) HasPoint2() bool { return ifd.point2 != nil }

// SetFirst replaces the lower-id side with clones of point and sigma.
func (ifd *InterfaceData) SetFirst(sp space.Space, point, sigma space.State) {
	if ifd.point1 != nil {
		sp.Free(ifd.point1)
	}
	if ifd.sigma1 != nil {
		sp.Free(ifd.sigma1)
	}
	ifd.point1 = sp.Clone(point)
	ifd.sigma1 = sp.Clone(sigma)
	ifd.refreshD(sp)
}

// SetSecond replaces the higher-id side with clones of point and sigma.
func (ifd *InterfaceData) SetSecond(sp space.Space, point, sigma space.State) {
	if ifd.point2 != nil {
		sp.Free(ifd.point2)
	}
	if ifd.sigma2 != nil {
		sp.Free(ifd.sigma2)
	}
	ifd.point2 = sp.Clone(point)
	ifd.sigma2 = sp.Clone(sigma)
	ifd.refreshD(sp)
}

// Clear frees all held states and resets the record to empty.
func (ifd *InterfaceData) Clear(sp space.Space) {
	sp.Free(ifd.point1)
	sp.Free(ifd.sigma1)
	sp.Free(ifd.point2)
	sp.Free(ifd.sigma2)
	ifd.point1, ifd.sigma1 = nil, nil
	ifd.point2, ifd.sigma2 = nil, nil
	ifd.d = math.Inf(1)
}

func (ifd *InterfaceData) refreshD(sp space.Space) {
	if ifd.point1 != nil && ifd.point2 != nil {
		ifd.d = sp.Distance(ifd.point1, ifd.point2)
	} else {
		ifd.d = math.Inf(1)
	}
}
