package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func splitStudy() *Sweep {
	return &Sweep{
		Name:       "study12",
		Geometries: []string{"study12"},
		Params: []Param{
			{Name: "split", Min: 0, Max: 4},
			{Name: "exp5", Min: 12, Max: 12},
		},
		Output: "study12_{exp5}_{split}.h5",
		Echo:   true,
	}
}

func ringStudy() *Sweep {
	return &Sweep{
		Name:       "ring",
		Geometries: []string{"ring", "ring_antisym"},
		Params:     []Param{{Name: "p", Min: 0, Max: 7}},
		Output:     "{geometry}{p}.h5",
	}
}

func TestExpand_SplitStudy(t *testing.T) {
	t.Parallel()

	invs, err := splitStudy().Expand()
	require.NoError(t, err)
	require.Len(t, invs, 5)

	first, last := invs[0], invs[4]
	assert.Equal(t, "study12.geo", first.GeoFile)
	assert.Equal(t, "study12_12_0.h5", first.OutFile)
	assert.Equal(t, "-setnumber split 0 -setnumber exp5 12", first.Options)
	assert.Equal(t, "study12_12_4.h5", last.OutFile)
	assert.Equal(t, "-setnumber split 4 -setnumber exp5 12", last.Options)

	for i, inv := range invs {
		assert.Equal(t, "study12.geo", inv.GeoFile, "invocation %d", i)
		assert.True(t, inv.Echo, "invocation %d", i)
	}
}

func TestExpand_RingStudy(t *testing.T) {
	t.Parallel()

	invs, err := ringStudy().Expand()
	require.NoError(t, err)
	require.Len(t, invs, 16)

	// Geometries form the outer loop: all ring meshes precede ring_antisym.
	assert.Equal(t, "ring.geo", invs[0].GeoFile)
	assert.Equal(t, "ring0.h5", invs[0].OutFile)
	assert.Equal(t, "-setnumber p 0", invs[0].Options)
	assert.Equal(t, "ring7.h5", invs[7].OutFile)
	assert.Equal(t, "ring_antisym.geo", invs[8].GeoFile)
	assert.Equal(t, "ring_antisym0.h5", invs[8].OutFile)
	assert.Equal(t, "ring_antisym7.h5", invs[15].OutFile)
	assert.Equal(t, "-setnumber p 7", invs[15].Options)

	for _, inv := range invs {
		assert.False(t, inv.Echo)
	}
}

func TestExpand_OutputNamesAreUnique(t *testing.T) {
	t.Parallel()

	for _, s := range []*Sweep{splitStudy(), ringStudy()} {
		invs, err := s.Expand()
		require.NoError(t, err)

		seen := make(map[string]struct{}, len(invs))
		for _, inv := range invs {
			_, dup := seen[inv.OutFile]
			assert.False(t, dup, "duplicate output %q in sweep %q", inv.OutFile, s.Name)
			seen[inv.OutFile] = struct{}{}
		}
	}
}

func TestExpand_IsPure(t *testing.T) {
	t.Parallel()

	s := ringStudy()
	a, err := s.Expand()
	require.NoError(t, err)
	b, err := s.Expand()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestExpand_ExplicitValues(t *testing.T) {
	t.Parallel()

	s := &Sweep{
		Name:       "coarse",
		Geometries: []string{"ring"},
		Params:     []Param{{Name: "p", Values: []int{5, 2, 9}}},
		Output:     "{geometry}{p}.h5",
	}

	invs, err := s.Expand()
	require.NoError(t, err)
	require.Len(t, invs, 3)

	// Values iterate in literal order, not sorted.
	assert.Equal(t, "ring5.h5", invs[0].OutFile)
	assert.Equal(t, "ring2.h5", invs[1].OutFile)
	assert.Equal(t, "ring9.h5", invs[2].OutFile)
}

func TestExpand_DuplicateOutputRejected(t *testing.T) {
	t.Parallel()

	// The template ignores p, so every combination collides.
	s := &Sweep{
		Name:       "collide",
		Geometries: []string{"ring"},
		Params:     []Param{{Name: "p", Min: 0, Max: 1}},
		Output:     "{geometry}.h5",
	}

	_, err := s.Expand()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate filename")
}

func TestExpand_UnresolvedPlaceholderRejected(t *testing.T) {
	t.Parallel()

	s := &Sweep{
		Name:       "typo",
		Geometries: []string{"ring"},
		Params:     []Param{{Name: "p", Min: 0, Max: 0}},
		Output:     "{geometry}{q}.h5",
	}

	_, err := s.Expand()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unresolved placeholder")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mutate  func(s *Sweep)
		wantErr string
	}{
		{
			name:    "valid",
			mutate:  func(s *Sweep) {},
			wantErr: "",
		},
		{
			name:    "no geometries",
			mutate:  func(s *Sweep) { s.Geometries = nil },
			wantErr: "at least one geometry",
		},
		{
			name:    "no output",
			mutate:  func(s *Sweep) { s.Output = "" },
			wantErr: "output template",
		},
		{
			name:    "no params",
			mutate:  func(s *Sweep) { s.Params = nil },
			wantErr: "at least one param",
		},
		{
			name:    "inverted range",
			mutate:  func(s *Sweep) { s.Params[0].Min = 5 },
			wantErr: "exceeds max",
		},
		{
			name: "duplicate param",
			mutate: func(s *Sweep) {
				s.Params = append(s.Params, Param{Name: "split", Min: 0, Max: 1})
			},
			wantErr: "duplicate param",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := splitStudy()
			tc.mutate(s)
			err := s.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}
