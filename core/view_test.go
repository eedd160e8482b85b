package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/dijkstar/core"
)

// OverlaySuite exercises annex shadowing and extension rules.
type OverlaySuite struct {
	suite.Suite
	base  *core.Graph[int]
	annex *core.Graph[int]
}

func (s *OverlaySuite) SetupTest() {
	s.base = core.NewGraph[int]()
	s.base.AddEdge(1, 2, 1)
	s.base.AddEdge(1, 3, 2)
	s.base.AddEdge(3, 4, 2)

	s.annex = core.NewGraph[int]()
	s.annex.AddEdge(1, 3, 0.5) // shadows base 1→3
	s.annex.AddEdge(1, 5, 9)   // extends node 1
	s.annex.AddEdge(7, 4, 1)   // annex-only node
}

// TestShadowAndExtend verifies annex precedence on key collision and addition on new keys.
func (s *OverlaySuite) TestShadowAndExtend() {
	o := core.NewOverlay(s.base, s.annex)
	require.Equal(s.T(), map[int]float64{2: 1, 3: 0.5, 5: 9}, o.Outgoing(1))
}

// TestAnnexOnlyNode verifies that annex-only nodes expose exactly their annex edges.
func (s *OverlaySuite) TestAnnexOnlyNode() {
	o := core.NewOverlay(s.base, s.annex)
	require.Equal(s.T(), map[int]float64{4: 1}, o.Outgoing(7))
	require.True(s.T(), o.HasNode(7))
	require.False(s.T(), o.HasNode(99))
	require.Empty(s.T(), o.Outgoing(99))
}

// TestNoMutation verifies that composing and iterating leaves both graphs untouched.
func (s *OverlaySuite) TestNoMutation() {
	o := core.NewOverlay(s.base, s.annex)
	for range o.OutEdges(1) {
	}

	w, err := s.base.Edge(1, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2.0, w)
	require.False(s.T(), s.base.HasNode(5))
	require.False(s.T(), s.annex.HasNode(2))
	require.Equal(s.T(), 3, s.base.EdgeCount())
	require.Equal(s.T(), 3, s.annex.EdgeCount())
}

// TestNilSides verifies that nil graphs behave as empty ones.
func (s *OverlaySuite) TestNilSides() {
	require.Equal(s.T(), map[int]float64{2: 1, 3: 2}, core.NewOverlay(s.base, nil).Outgoing(1))
	require.Equal(s.T(), map[int]float64{3: 0.5, 5: 9}, core.NewOverlay(nil, s.annex).Outgoing(1))
	require.Empty(s.T(), core.NewOverlay[int](nil, nil).Outgoing(1))
}

// TestEarlyStop verifies that breaking out of the iterator is honored.
func (s *OverlaySuite) TestEarlyStop() {
	o := core.NewOverlay(s.base, s.annex)
	n := 0
	for range o.OutEdges(1) {
		n++
		break
	}
	require.Equal(s.T(), 1, n)
}

func TestOverlaySuite(t *testing.T) {
	suite.Run(t, new(OverlaySuite))
}
