package world

import (
	"math"
	"math/rand/v2"

	"github.com/ChicagoDave/roadworld/pkg/config"
	"github.com/ChicagoDave/roadworld/pkg/geo"
	"github.com/samber/lo"
)

const (
	maxTreeFailures = 200 // consecutive rejected samples before giving up
	treeBaseSamples = 32
)

// Tree is a placed tree. Base is its slightly irregular outline at ground
// level; HeightCoefficient and LevelCount describe the canopy for renderers.
type Tree struct {
	Center            geo.Point   `json:"center" yaml:"center"`
	Size              float64     `json:"size" yaml:"size"`
	HeightCoefficient float64     `json:"heightCoefficient" yaml:"heightCoefficient"`
	LevelCount        int         `json:"levelCount" yaml:"levelCount"`
	Base              geo.Polygon `json:"base" yaml:"base"`
}

// NewTree returns a tree of the given size at center.
func NewTree(center geo.Point, size float64) Tree {
	return Tree{
		Center:            center,
		Size:              size,
		HeightCoefficient: 0.3,
		LevelCount:        7,
		Base:              treeOutline(center, size),
	}
}

// treeOutline samples a circle of diameter size with a radius that wobbles
// between half and full, deterministically from the angle and center.
func treeOutline(center geo.Point, size float64) geo.Polygon {
	rad := size / 2
	pts := make([]geo.Point, 0, treeBaseSamples)
	for i := range treeBaseSamples {
		a := 2 * math.Pi * float64(i) / treeBaseSamples
		noise := math.Pow(math.Cos(math.Mod((a+center.X)*size, 17)), 2)
		pts = append(pts, center.Translate(a, rad*geo.Lerp(0.5, 1, noise)))
	}
	return geo.NewPolygon(pts...)
}

// generateTrees rejection-samples tree positions inside the bounding box of
// the road borders and building corners. A candidate is kept when it is off
// every occupied polygon by more than treeSize/2, more than treeSize from every
// earlier tree, and within 2*treeSize of some occupied polygon. Sampling
// stops after maxTreeFailures rejections in a row.
func generateTrees(borders []geo.Segment, buildings []Building, envs []geo.Envelope, o config.Options) []Tree {
	pts := lo.FlatMap(borders, func(s geo.Segment, _ int) []geo.Point {
		return []geo.Point{s.P1, s.P2}
	})
	for _, b := range buildings {
		pts = append(pts, b.Base.Points...)
	}
	bound, ok := geo.Bounds(pts)
	if !ok {
		return nil
	}

	illegal := occupied(buildings, envs)
	rng := rand.New(rand.NewPCG(o.Seed, o.Seed))
	size := o.TreeSize

	var trees []Tree
	for failures := 0; failures < maxTreeFailures; {
		p := geo.Pt(
			geo.Lerp(bound.Min.X(), bound.Max.X(), rng.Float64()),
			geo.Lerp(bound.Min.Y(), bound.Max.Y(), rng.Float64()),
		)

		if !treeFits(p, size, illegal, trees) {
			failures++
			continue
		}
		trees = append(trees, NewTree(p, size))
		failures = 0
	}
	return trees
}

// treeFits reports whether a tree of the given size may stand at p: outside
// every occupied polygon and farther than size/2 from its edges, farther than
// size from every placed tree, and closer than 2*size to some polygon.
func treeFits(p geo.Point, size float64, illegal []geo.Polygon, trees []Tree) bool {
	free := lo.EveryBy(illegal, func(poly geo.Polygon) bool {
		return !poly.Contains(p) && poly.DistanceToPoint(p) > size/2
	})
	spaced := free && lo.EveryBy(trees, func(t Tree) bool {
		return t.Center.Distance(p) > size
	})
	return spaced && lo.SomeBy(illegal, func(poly geo.Polygon) bool {
		return poly.DistanceToPoint(p) < size*2
	})
}
