package palette

import (
	"fmt"
	"math"
	"sort"

	"github.com/tdhoang/color-tools-mcp/internal/imaging"
)

// Cluster is one representative color with its supporting pixel population.
type Cluster struct {
	Hex        string         `json:"hex"`                  // "#RRGGBB" of the representative color
	Color      imaging.Sample `json:"color"`                // Representative color
	Count      int            `json:"count"`                // Pixels assigned to this cluster
	Percentage float64        `json:"percentage,omitempty"` // Share of sampled pixels (0-100)
}

// alphaThreshold is the minimum alpha for a pixel to count as visible.
const alphaThreshold = 128

// Dominant extracts the most frequent colors by quantized histogram.
//
// Pixels are visited at a stride of sampleRate (1 = every pixel); pixels
// with alpha below 128 are skipped. Each channel is quantized to a 32-wide
// bucket (floor(channel/32)*32) so near-identical colors tally together.
// The result holds at most maxColors buckets, most frequent first, each
// with its share of the sampled population.
func Dominant(buf *imaging.PixelBuffer, maxColors, sampleRate int) []Cluster {
	if buf == nil || len(buf.Pix) == 0 || maxColors <= 0 {
		return []Cluster{}
	}
	if sampleRate < 1 {
		sampleRate = 1
	}

	type bucket struct {
		color imaging.Sample
		count int
	}
	counts := make(map[uint32]*bucket)
	sampled := 0

	total := buf.Width * buf.Height
	for p := 0; p < total; p += sampleRate {
		i := p * 4
		if buf.Pix[i+3] < alphaThreshold {
			continue
		}
		qr := buf.Pix[i] / 32 * 32
		qg := buf.Pix[i+1] / 32 * 32
		qb := buf.Pix[i+2] / 32 * 32
		key := uint32(qr)<<16 | uint32(qg)<<8 | uint32(qb)
		b, ok := counts[key]
		if !ok {
			b = &bucket{color: imaging.Sample{R: qr, G: qg, B: qb, A: 255}}
			counts[key] = b
		}
		b.count++
		sampled++
	}
	if sampled == 0 {
		return []Cluster{}
	}

	clusters := make([]Cluster, 0, len(counts))
	for _, b := range counts {
		clusters = append(clusters, Cluster{
			Hex:        b.color.Hex(),
			Color:      b.color,
			Count:      b.count,
			Percentage: math.Round(float64(b.count)/float64(sampled)*10000) / 100,
		})
	}
	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].Count > clusters[j].Count
	})
	if len(clusters) > maxColors {
		clusters = clusters[:maxColors]
	}
	return clusters
}

// Adaptive extracts colors by seeding from a regular grid and refining with
// one assignment pass.
//
// Seeds are up to 2*targetColors opaque pixels taken from a square grid of
// side ceil(sqrt(targetColors*2)). Every swept pixel (stride
// max(1, 6-qualityLevel), so higher quality sweeps more pixels) is assigned
// to its nearest seed by RGB Euclidean distance; each seed's cluster then
// reports the arithmetic mean of its members. Clusters are ranked by member
// count and the top targetColors are returned.
//
// This is intentionally a single pass, not iterative k-means: seeds are
// never re-assigned after the sweep, which keeps the cost linear and the
// output distribution stable. Treat the approximation as part of the
// contract.
func Adaptive(buf *imaging.PixelBuffer, targetColors, qualityLevel int) []Cluster {
	if buf == nil || len(buf.Pix) == 0 || targetColors <= 0 {
		return []Cluster{}
	}

	seedTarget := targetColors * 2
	gridDim := int(math.Ceil(math.Sqrt(float64(seedTarget))))

	type seed struct {
		r, g, b                    float64
		sumR, sumG, sumB, sumCount int
	}
	seeds := make([]*seed, 0, seedTarget)

	stepX := buf.Width / (gridDim + 1)
	stepY := buf.Height / (gridDim + 1)
	for gy := 1; gy <= gridDim && len(seeds) < seedTarget; gy++ {
		for gx := 1; gx <= gridDim && len(seeds) < seedTarget; gx++ {
			x, y := gx*stepX, gy*stepY
			if !buf.Contains(x, y) {
				continue
			}
			i := (y*buf.Width + x) * 4
			if buf.Pix[i+3] < alphaThreshold {
				continue
			}
			seeds = append(seeds, &seed{
				r: float64(buf.Pix[i]),
				g: float64(buf.Pix[i+1]),
				b: float64(buf.Pix[i+2]),
			})
		}
	}
	if len(seeds) == 0 {
		return []Cluster{}
	}

	stride := 6 - qualityLevel
	if stride < 1 {
		stride = 1
	}

	total := buf.Width * buf.Height
	for p := 0; p < total; p += stride {
		i := p * 4
		r := int(buf.Pix[i])
		g := int(buf.Pix[i+1])
		b := int(buf.Pix[i+2])

		best := 0
		bestDist := math.MaxFloat64
		for si, s := range seeds {
			dr := float64(r) - s.r
			dg := float64(g) - s.g
			db := float64(b) - s.b
			d := dr*dr + dg*dg + db*db
			if d < bestDist {
				bestDist = d
				best = si
			}
		}
		seeds[best].sumR += r
		seeds[best].sumG += g
		seeds[best].sumB += b
		seeds[best].sumCount++
	}

	sampled := 0
	clusters := make([]Cluster, 0, len(seeds))
	for _, s := range seeds {
		if s.sumCount == 0 {
			continue
		}
		sampled += s.sumCount
		c := imaging.Sample{
			R: uint8(s.sumR / s.sumCount),
			G: uint8(s.sumG / s.sumCount),
			B: uint8(s.sumB / s.sumCount),
			A: 255,
		}
		clusters = append(clusters, Cluster{
			Hex:   c.Hex(),
			Color: c,
			Count: s.sumCount,
		})
	}
	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].Count > clusters[j].Count
	})
	// Seeding overshoots to 2x the target for coverage; only the top
	// targetColors clusters are reported.
	if len(clusters) > targetColors {
		clusters = clusters[:targetColors]
	}
	for i := range clusters {
		clusters[i].Percentage = math.Round(float64(clusters[i].Count)/float64(sampled)*10000) / 100
	}
	return clusters
}

// perceptualSampleBudget caps how many pixels the perceptual strategy
// inspects regardless of image size.
const perceptualSampleBudget = 10000

// Perceptual extracts colors weighted by how much they contribute to the
// image as seen, not just how often they occur.
//
// Up to ~10,000 pixels are sampled (stride totalPixels/10000, minimum 1),
// skipping alpha below 128. Channels are quantized with widths tuned to
// human sensitivity — red 24, green 16 (the eye resolves green best), blue
// 32 — and each observation is weighted by max(0.1, luminance/255) using
// the BT.601 luminance. Buckets are ranked by count x accumulated weight,
// so a bright accent color can outrank a slightly larger pool of murk.
func Perceptual(buf *imaging.PixelBuffer, maxColors int) []Cluster {
	if buf == nil || len(buf.Pix) == 0 || maxColors <= 0 {
		return []Cluster{}
	}

	total := buf.Width * buf.Height
	stride := total / perceptualSampleBudget
	if stride < 1 {
		stride = 1
	}

	type bucket struct {
		color  imaging.Sample
		count  int
		weight float64
	}
	buckets := make(map[uint32]*bucket)
	sampled := 0

	for p := 0; p < total; p += stride {
		i := p * 4
		if buf.Pix[i+3] < alphaThreshold {
			continue
		}
		r := buf.Pix[i]
		g := buf.Pix[i+1]
		b := buf.Pix[i+2]

		qr := r / 24 * 24
		qg := g / 16 * 16
		qb := b / 32 * 32
		key := uint32(qr)<<16 | uint32(qg)<<8 | uint32(qb)

		luminance := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
		weight := math.Max(0.1, luminance/255)

		bk, ok := buckets[key]
		if !ok {
			bk = &bucket{color: imaging.Sample{R: qr, G: qg, B: qb, A: 255}}
			buckets[key] = bk
		}
		bk.count++
		bk.weight += weight
		sampled++
	}
	if sampled == 0 {
		return []Cluster{}
	}

	type scored struct {
		cluster Cluster
		score   float64
	}
	ranked := make([]scored, 0, len(buckets))
	for _, bk := range buckets {
		ranked = append(ranked, scored{
			cluster: Cluster{
				Hex:        bk.color.Hex(),
				Color:      bk.color,
				Count:      bk.count,
				Percentage: math.Round(float64(bk.count)/float64(sampled)*10000) / 100,
			},
			score: float64(bk.count) * bk.weight,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	if len(ranked) > maxColors {
		ranked = ranked[:maxColors]
	}

	clusters := make([]Cluster, len(ranked))
	for i, s := range ranked {
		clusters[i] = s.cluster
	}
	return clusters
}

// Strategy selects a clustering algorithm by name.
type Strategy string

// Recognized strategies.
const (
	StrategyDominant   Strategy = "dominant"
	StrategyAdaptive   Strategy = "adaptive"
	StrategyPerceptual Strategy = "perceptual"
)

// Options tunes an Extract call. Zero values select sensible defaults.
type Options struct {
	MaxColors  int // Colors to return; default 5
	SampleRate int // Dominant only: pixel stride; default 1
	Quality    int // Adaptive only: 1 (fast) to 5 (thorough); default 3
}

// Extract runs the named strategy over a buffer. Unknown strategy names
// are rejected with an error listing the valid choices.
func Extract(buf *imaging.PixelBuffer, strategy Strategy, opts Options) ([]Cluster, error) {
	if opts.MaxColors <= 0 {
		opts.MaxColors = 5
	}
	if opts.SampleRate <= 0 {
		opts.SampleRate = 1
	}
	if opts.Quality <= 0 {
		opts.Quality = 3
	}

	switch strategy {
	case StrategyDominant:
		return Dominant(buf, opts.MaxColors, opts.SampleRate), nil
	case StrategyAdaptive:
		return Adaptive(buf, opts.MaxColors, opts.Quality), nil
	case StrategyPerceptual:
		return Perceptual(buf, opts.MaxColors), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (valid: %s, %s, %s)",
			strategy, StrategyDominant, StrategyAdaptive, StrategyPerceptual)
	}
}
