package session_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobiofabric/biofabric/core"
	"github.com/gobiofabric/biofabric/layout"
	"github.com/gobiofabric/biofabric/session"
)

func chain(t *testing.T) *core.Network {
	t.Helper()
	n := core.NewNetwork()
	_, err := n.AddLink("N0", "N1", "r", core.Unspecified, false)
	require.NoError(t, err)
	_, err = n.AddLink("N1", "N2", "r", core.Unspecified, false)
	require.NoError(t, err)
	n.GenerateShadows()

	return n
}

func layoutOf(t *testing.T, net *core.Network) *layout.NetworkLayout {
	t.Helper()
	order, _, err := layout.LayoutNodes(net, layout.KindDefault, layout.Params{})
	require.NoError(t, err)
	nl, err := layout.LayoutEdges(net, order, layout.Params{})
	require.NoError(t, err)

	return nl
}

func TestFromNetworkAssignsID(t *testing.T) {
	s, err := session.FromNetwork(chain(t))
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Nil(t, s.Layout)
}

func TestWriteBIFRoundTrip(t *testing.T) {
	net := chain(t)
	nl := layoutOf(t, net)

	s, err := session.WithLayout(net, nl)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, session.WriteBIF(s, &buf))

	back, err := session.ReadBIF(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, net.NodeCount(), back.Network.NodeCount())
	assert.Equal(t, net.EdgeCount(), back.Network.EdgeCount())
}

func TestWriteBIFOmitsDefaultDisplayAttributes(t *testing.T) {
	s, err := session.FromNetwork(chain(t))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, session.WriteBIF(s, &buf))
	assert.NotContains(t, buf.String(), "showShadows=")
}

func TestWriteBIFExplicitShadowsForcesAttribute(t *testing.T) {
	s, err := session.FromNetwork(chain(t))
	require.NoError(t, err)
	s.Display.ExplicitShadows = true

	var buf strings.Builder
	require.NoError(t, session.WriteBIF(s, &buf))
	assert.Contains(t, buf.String(), "showShadows=")
}

func TestExtractSubmodelCompressesRowsAndColumns(t *testing.T) {
	net := core.NewNetwork()
	for i := 0; i < 10; i++ {
		if i > 0 {
			prev := "N" + strconv.Itoa(i-1)
			cur := "N" + strconv.Itoa(i)
			_, err := net.AddLink(prev, cur, "r", core.Unspecified, false)
			require.NoError(t, err)
		}
	}
	nl := layoutOf(t, net)
	s, err := session.WithLayout(net, nl)
	require.NoError(t, err)

	out, err := session.ExtractSubmodel(s, []string{"N0", "N2", "N4"})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Network.NodeCount())
	require.NotNil(t, out.Layout)
	assert.Equal(t, 3, out.Layout.RowCount)
	assert.Equal(t, 0, out.Layout.ColumnCountNoShadows)
}

func TestExtractSubmodelRejectsEmptySet(t *testing.T) {
	s, err := session.FromNetwork(chain(t))
	require.NoError(t, err)
	_, err = session.ExtractSubmodel(s, nil)
	assert.ErrorIs(t, err, session.ErrEmptyNodeSet)
}

