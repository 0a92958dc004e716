package adjacency

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/graphsupply/core/internal/models"
)

// RandomSource yields uniform numbers in [0,1).
type RandomSource func() float64

// Generator produces random adjacency matrices. A Generator is safe for
// concurrent use as long as its RandomSource is.
type Generator struct {
	random RandomSource
}

type Option func(*Generator)

// WithRandomSource replaces the default random source. It panics on nil.
func WithRandomSource(src RandomSource) Option {
	if src == nil {
		panic("adjacency: WithRandomSource(nil)")
	}
	return func(g *Generator) {
		g.random = src
	}
}

// WithSeed makes the generator reproducible for a given seed.
func WithSeed(seed uint64) Option {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	var mu sync.Mutex
	return WithRandomSource(func() float64 {
		mu.Lock()
		defer mu.Unlock()
		return r.Float64()
	})
}

// NewGenerator returns a generator drawing from the global math/rand/v2
// source unless an option says otherwise.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{random: rand.Float64}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds a matrix for p.
//
// Rows are visited in ascending order. Directed graphs try every column of a
// row; undirected graphs only try the upper triangle, starting at the
// diagonal when loops are allowed, and mirror every chosen cell. Each tried
// cell becomes an edge with probability density/100. Weights are uniform
// integers in [1, nodes], otherwise every edge is 1.
func (g *Generator) Generate(p models.GenerationParameters) (*models.GraphResult, error) {
	if err := CheckParameters(p); err != nil {
		return nil, err
	}

	n := p.Nodes
	m := Zero(n)

	for row := 0; row < n; row++ {
		for col := firstColumn(p, row); col < n; col++ {
			if row == col && !p.Loops {
				continue
			}
			if !g.chosen(p.Density) {
				continue
			}

			value := 1.0
			if p.Weighted {
				value = g.weight(n)
			}
			m[row][col] = value
			if !p.Directed {
				m[col][row] = value
			}
		}
	}

	edges := float64(CountNonZero(m))
	if !p.Directed {
		edges /= 2
	}

	return &models.GraphResult{
		Metadata: models.Metadata{
			Params: models.ParamsEcho{
				GenerationParameters: p,
				Lines:                n,
				Columns:              n,
			},
			Edges:            edges,
			Message:          fmt.Sprintf("Graph generated with %s%% density", FormatEntry(p.Density)),
			UnderstoodParams: UnderstoodParams,
		},
		Matrix: m,
	}, nil
}

func firstColumn(p models.GenerationParameters, row int) int {
	switch {
	case p.Directed:
		return 0
	case p.Loops:
		return row
	default:
		return row + 1
	}
}

func (g *Generator) chosen(density float64) bool {
	return g.random()*100 < density
}

func (g *Generator) weight(nodes int) float64 {
	return min(math.Floor(g.random()*float64(nodes)+1), float64(nodes))
}
