package sweep

import (
	"fmt"
	"strconv"
	"strings"
)

// Param is a single named integer parameter of a sweep. It is either an
// inclusive [Min, Max] range or an explicit Values list; Values takes
// precedence when set.
type Param struct {
	Name   string
	Min    int
	Max    int
	Values []int
}

// values returns the concrete values this parameter contributes to the
// Cartesian product, in ascending range order or literal Values order.
func (p *Param) values() []int {
	if len(p.Values) > 0 {
		return p.Values
	}
	vals := make([]int, 0, p.Max-p.Min+1)
	for v := p.Min; v <= p.Max; v++ {
		vals = append(vals, v)
	}
	return vals
}

// Sweep is the format-agnostic definition of one parameter sweep: a set of
// geometry variants crossed with one or more ordered parameters. Each
// combination produces exactly one mesh-generator invocation.
type Sweep struct {
	Name       string
	Geometries []string
	Params     []Param

	// Output is the output filename template. It may reference
	// "{geometry}" and "{<param name>}" placeholders.
	Output string

	// Echo prints each output filename to the run's output stream before
	// the invocation, matching the original study scripts.
	Echo bool
}

// Invocation is one fully resolved call to the external mesh generator.
type Invocation struct {
	Sweep    string
	Geometry string

	// GeoFile is the geometry description input path, "<geometry>.geo".
	GeoFile string

	// OutFile is the rendered output filename, unique within the sweep.
	OutFile string

	// Options is the single space-joined "-setnumber <name> <value>"
	// override string, in parameter order.
	Options string

	Echo bool
}

// Validate checks the structural integrity of the definition. Placeholder
// resolution is checked during Expand, where concrete names exist.
func (s *Sweep) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("sweep has no name")
	}
	if len(s.Geometries) == 0 {
		return fmt.Errorf("sweep %q: at least one geometry is required", s.Name)
	}
	for _, g := range s.Geometries {
		if g == "" {
			return fmt.Errorf("sweep %q: empty geometry name", s.Name)
		}
	}
	if s.Output == "" {
		return fmt.Errorf("sweep %q: output template is required", s.Name)
	}
	if len(s.Params) == 0 {
		return fmt.Errorf("sweep %q: at least one param is required", s.Name)
	}
	seen := make(map[string]struct{}, len(s.Params))
	for _, p := range s.Params {
		if p.Name == "" {
			return fmt.Errorf("sweep %q: param has no name", s.Name)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("sweep %q: duplicate param %q", s.Name, p.Name)
		}
		seen[p.Name] = struct{}{}
		if len(p.Values) == 0 && p.Min > p.Max {
			return fmt.Errorf("sweep %q: param %q: min %d exceeds max %d", s.Name, p.Name, p.Min, p.Max)
		}
	}
	return nil
}

// Expand enumerates the full Cartesian product of geometries and parameter
// values into an ordered invocation list. Geometries form the outer loop;
// parameters iterate left to right, each ascending. Expansion is a pure
// function of the definition, so repeated runs yield identical sequences.
func (s *Sweep) Expand() ([]Invocation, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	valueSets := make([][]int, len(s.Params))
	total := len(s.Geometries)
	for i, p := range s.Params {
		valueSets[i] = p.values()
		total *= len(valueSets[i])
	}

	invs := make([]Invocation, 0, total)
	seen := make(map[string]struct{}, total)

	for _, geometry := range s.Geometries {
		indices := make([]int, len(s.Params))
		for {
			inv, err := s.render(geometry, valueSets, indices)
			if err != nil {
				return nil, err
			}
			if _, dup := seen[inv.OutFile]; dup {
				return nil, fmt.Errorf("sweep %q: output template yields duplicate filename %q", s.Name, inv.OutFile)
			}
			seen[inv.OutFile] = struct{}{}
			invs = append(invs, inv)

			if !advance(indices, valueSets) {
				break
			}
		}
	}
	return invs, nil
}

// advance increments the rightmost index odometer-style. It returns false
// once the full product has been visited.
func advance(indices []int, valueSets [][]int) bool {
	for i := len(indices) - 1; i >= 0; i-- {
		indices[i]++
		if indices[i] < len(valueSets[i]) {
			return true
		}
		indices[i] = 0
	}
	return false
}

// render resolves one combination into an Invocation.
func (s *Sweep) render(geometry string, valueSets [][]int, indices []int) (Invocation, error) {
	out := strings.ReplaceAll(s.Output, "{geometry}", geometry)

	var opts strings.Builder
	for i, p := range s.Params {
		v := valueSets[i][indices[i]]
		out = strings.ReplaceAll(out, "{"+p.Name+"}", strconv.Itoa(v))
		if i > 0 {
			opts.WriteByte(' ')
		}
		fmt.Fprintf(&opts, "-setnumber %s %d", p.Name, v)
	}

	if i := strings.IndexByte(out, '{'); i >= 0 {
		return Invocation{}, fmt.Errorf("sweep %q: unresolved placeholder in output name %q", s.Name, out)
	}

	return Invocation{
		Sweep:    s.Name,
		Geometry: geometry,
		GeoFile:  geometry + ".geo",
		OutFile:  out,
		Options:  opts.String(),
		Echo:     s.Echo,
	}, nil
}
