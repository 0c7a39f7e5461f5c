package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/cellfind/core"
	"github.com/katalvlaran/cellfind/grid"
)

type GraphSuite struct {
	suite.Suite
	g       *core.Graph
	a, b, c *core.Region
}

func mustRegion(t require.TestingT, id int, typ core.RegionType, cells ...grid.Cell) *core.Region {
	r, err := core.NewRegion(id, typ, cells, nil)
	require.NoError(t, err)
	return r
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph()
	s.a = mustRegion(s.T(), 3, core.RegionNormal, grid.Cell{X: 0, Z: 0}, grid.Cell{X: 1, Z: 0})
	s.b = mustRegion(s.T(), 1, core.RegionNormal, grid.Cell{X: 2, Z: 0})
	s.c = mustRegion(s.T(), 2, core.RegionDoor, grid.Cell{X: 3, Z: 0})
	for _, r := range []*core.Region{s.a, s.b, s.c} {
		s.Require().NoError(s.g.AddRegion(r))
	}
}

func (s *GraphSuite) TestAddRegionErrors() {
	require := require.New(s.T())
	require.ErrorIs(s.g.AddRegion(nil), core.ErrNilRegion)
	dup := mustRegion(s.T(), 3, core.RegionNormal, grid.Cell{X: 9, Z: 9})
	require.ErrorIs(s.g.AddRegion(dup), core.ErrDuplicateRegion)
	require.Equal(3, s.g.RegionCount())
}

func (s *GraphSuite) TestLinkIsSymmetricAndIdempotent() {
	require := require.New(s.T())
	require.NoError(s.g.Link(s.a, s.b))
	require.NoError(s.g.Link(s.b, s.a))
	require.True(s.g.HasLink(s.a, s.b))
	require.True(s.g.HasLink(s.b, s.a))
	require.Equal(1, s.g.LinkCount())
	require.Equal([]*core.Region{s.b}, s.a.Neighbors())
}

func (s *GraphSuite) TestLinkErrors() {
	require := require.New(s.T())
	require.ErrorIs(s.g.Link(s.a, s.a), core.ErrSelfLink)
	require.ErrorIs(s.g.Link(nil, s.a), core.ErrNilRegion)
	stranger := mustRegion(s.T(), 99, core.RegionNormal, grid.Cell{X: 5, Z: 5})
	require.ErrorIs(s.g.Link(s.a, stranger), core.ErrRegionNotFound)
}

func (s *GraphSuite) TestNeighborsSortedByID() {
	require := require.New(s.T())
	require.NoError(s.g.Link(s.a, s.c))
	require.NoError(s.g.Link(s.a, s.b))
	require.Equal([]*core.Region{s.b, s.c}, s.a.Neighbors())
}

func (s *GraphSuite) TestRegionsSortedAndLookup() {
	require := require.New(s.T())
	regs := s.g.Regions()
	require.Len(regs, 3)
	require.Equal([]int{1, 2, 3}, []int{regs[0].ID, regs[1].ID, regs[2].ID})
	require.Same(s.a, s.g.Region(3))
	require.Nil(s.g.Region(42))
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
