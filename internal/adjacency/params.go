package adjacency

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/graphsupply/core/internal/models"
)

const (
	DefaultNodes   = 10
	DefaultDensity = 50.0

	MinNodes   = 2
	MaxNodes   = 200
	MinDensity = 0.0
	MaxDensity = 100.0
)

// UnderstoodParams documents the accepted generation parameters. It is
// echoed in every generation result.
var UnderstoodParams = map[string]string{
	"density":  "0-100% (number, default: 50)",
	"nodes":    "Desired number of nodes 2-200 (number, default: 10)",
	"directed": "Whether the graph is directed (boolean, default: false)",
	"weighted": "Whether edges carry weights, e.g. for Dijkstra (boolean, default: false)",
	"loops":    "Whether self-loops are allowed (boolean, default: false)",
}

// DefaultParameters returns the parameters used when a request names none.
func DefaultParameters() models.GenerationParameters {
	return models.GenerationParameters{Nodes: DefaultNodes, Density: DefaultDensity}
}

// ParseParameters turns loosely typed request values into generation
// parameters. Absent, null or empty values fall back to the defaults.
// Numbers may arrive as JSON numbers or numeric strings; booleans follow
// Truthy. Out of range values are rejected, never clamped.
func ParseParameters(raw map[string]any) (models.GenerationParameters, error) {
	p := DefaultParameters()

	nodes, ok, err := number(raw, "nodes")
	if err != nil {
		return p, err
	}
	if ok {
		if nodes < MinNodes || nodes > MaxNodes {
			return p, fmt.Errorf("%w (got %s)", ErrNodesOutOfRange, FormatEntry(nodes))
		}
		if nodes != math.Trunc(nodes) {
			return p, fmt.Errorf("%w: nodes=%s is not an integer", ErrInvalidParameter, FormatEntry(nodes))
		}
		p.Nodes = int(nodes)
	}

	density, ok, err := number(raw, "density")
	if err != nil {
		return p, err
	}
	if ok {
		p.Density = density
	}

	p.Directed = Truthy(raw["directed"])
	p.Weighted = Truthy(raw["weighted"])
	p.Loops = Truthy(raw["loops"])

	return p, CheckParameters(p)
}

// CheckParameters enforces the node and density ranges.
func CheckParameters(p models.GenerationParameters) error {
	if p.Nodes < MinNodes || p.Nodes > MaxNodes {
		return fmt.Errorf("%w (got %d)", ErrNodesOutOfRange, p.Nodes)
	}
	if !(p.Density >= MinDensity && p.Density <= MaxDensity) {
		return fmt.Errorf("%w (got %s)", ErrDensityOutOfRange, FormatEntry(p.Density))
	}
	return nil
}

// Truthy interprets a loosely typed flag. Strings are true unless empty or
// one of "0", "false", "off", "no"; numbers are true unless zero.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "", "0", "false", "off", "no":
			return false
		}
		return true
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0
	default:
		f, ok := toFloat(v)
		return ok && f != 0 && !math.IsNaN(f)
	}
}

func number(raw map[string]any, key string) (float64, bool, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return 0, false, nil
	}

	if s, isString := v.(string); isString {
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, false, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) {
			return 0, false, fmt.Errorf("%w: %s=%q is not a number", ErrInvalidParameter, key, s)
		}
		return f, true, nil
	}

	f, isNumber := toFloat(v)
	if !isNumber || math.IsNaN(f) {
		return 0, false, fmt.Errorf("%w: %s=%v is not a number", ErrInvalidParameter, key, v)
	}
	return f, true, nil
}
