package aggregates

import (
	"encoding/json"
	"testing"

	"grapheditor/domain/config"
	"grapheditor/domain/core/valueobjects"
	"grapheditor/domain/events"
	pkgerrors "grapheditor/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession("s1", config.DefaultDomainConfig())
	require.NoError(t, err)
	return s
}

func strPtr(s string) *string { return &s }

func TestNewSession(t *testing.T) {
	s := newTestSession(t)

	assert.Equal(t, "s1", s.ID())
	assert.Equal(t, s.CreatedAt(), s.LastActive())

	evts := s.GetUncommittedEvents()
	require.Len(t, evts, 1)
	started, ok := evts[0].(events.SessionStarted)
	require.True(t, ok)
	assert.Equal(t, 2, started.NodeCount)
	assert.Equal(t, 1, started.EdgeCount)

	_, err := NewSession("", nil)
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestSessionScenario(t *testing.T) {
	s := newTestSession(t)

	node, err := s.CreateNode()
	require.NoError(t, err)
	assert.Equal(t, "3", node.ID().String())

	cascaded, err := s.DeleteNode(nid("1"))
	require.NoError(t, err)
	assert.Equal(t, []valueobjects.EdgeID{eid("e1-2")}, cascaded)

	assert.Equal(t, []string{"2", "3"}, nodeIDs(s.Graph()))
	assert.Empty(t, edgeIDs(s.Graph()))
}

func TestRenameFlow(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.SelectNode(nid("2")))
	sel, ok := s.UI().Selection()
	require.True(t, ok)
	assert.Equal(t, "2", sel.NodeID.String())
	assert.Equal(t, "2", sel.Draft, "draft is seeded with the current label")

	assert.True(t, s.EditDraft("Second"))

	renamed, err := s.RenameSelected(nil)
	require.NoError(t, err)
	assert.True(t, renamed)

	n, _ := s.Graph().Node(nid("2"))
	assert.Equal(t, "Second", n.Label())
	_, ok = s.UI().Selection()
	assert.False(t, ok, "selection is cleared after save")
}

func TestRenameSelectedExplicitLabel(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SelectNode(nid("1")))

	renamed, err := s.RenameSelected(strPtr("X"))
	require.NoError(t, err)
	assert.True(t, renamed)

	n, _ := s.Graph().Node(nid("1"))
	assert.Equal(t, "X", n.Label())
	other, _ := s.Graph().Node(nid("2"))
	assert.Equal(t, "2", other.Label())
}

func TestRenameSelectedWithoutSelectionIsNoop(t *testing.T) {
	s := newTestSession(t)
	version := s.Graph().Version()

	renamed, err := s.RenameSelected(strPtr("X"))
	require.NoError(t, err)
	assert.False(t, renamed)
	assert.Equal(t, version, s.Graph().Version())
	assert.False(t, s.EditDraft("ignored"))
}

func TestRenameSelectedTooLongKeepsPanelOpen(t *testing.T) {
	cfg := config.DefaultDomainConfig()
	cfg.MaxLabelLength = 2
	s, err := NewSession("s1", cfg)
	require.NoError(t, err)
	require.NoError(t, s.SelectNode(nid("1")))

	_, err = s.RenameSelected(strPtr("too long"))
	assert.True(t, pkgerrors.IsValidation(err))

	_, ok := s.UI().Selection()
	assert.True(t, ok)
}

func TestCancelRenameDiscardsDraft(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SelectNode(nid("1")))
	s.EditDraft("never saved")

	assert.True(t, s.CancelRename())
	assert.False(t, s.CancelRename())

	n, _ := s.Graph().Node(nid("1"))
	assert.Equal(t, "1", n.Label())
	_, ok := s.UI().Selection()
	assert.False(t, ok)
}

func TestSelectAnotherNodeReseedsDraft(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SelectNode(nid("1")))
	s.EditDraft("draft for 1")

	require.NoError(t, s.SelectNode(nid("2")))
	sel, _ := s.UI().Selection()
	assert.Equal(t, "2", sel.NodeID.String())
	assert.Equal(t, "2", sel.Draft)

	assert.True(t, pkgerrors.IsNotFound(s.SelectNode(nid("9"))))
}

func TestDeletingSelectedNodeClosesPanel(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SelectNode(nid("1")))

	_, err := s.DeleteNode(nid("1"))
	require.NoError(t, err)

	_, ok := s.UI().Selection()
	assert.False(t, ok)

	renamed, err := s.RenameSelected(strPtr("X"))
	require.NoError(t, err)
	assert.False(t, renamed)
}

func TestHoverNode(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.HoverNode(nid("2")))
	id, ok := s.UI().HoveredNode()
	require.True(t, ok)
	assert.Equal(t, "2", id.String())
	anchor, ok := s.NodeDeleteAnchor()
	require.True(t, ok)
	assert.True(t, anchor.Equals(valueobjects.MustPosition(10, 100)))

	s.UnhoverNode()
	_, ok = s.UI().HoveredNode()
	assert.False(t, ok)
	_, ok = s.NodeDeleteAnchor()
	assert.False(t, ok)

	assert.True(t, pkgerrors.IsNotFound(s.HoverNode(nid("9"))))
}

func TestHoverEdge(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.HoverEdge(eid("e1-2")))
	id, ok := s.UI().HoveredEdge()
	require.True(t, ok)
	assert.Equal(t, "e1-2", id.String())

	s.UnhoverEdge()
	_, ok = s.UI().HoveredEdge()
	assert.False(t, ok)

	assert.True(t, pkgerrors.IsNotFound(s.HoverEdge(eid("nope"))))
}

func TestDeleteHovered(t *testing.T) {
	s := newTestSession(t)

	deleted, err := s.DeleteHoveredNode()
	require.NoError(t, err)
	assert.False(t, deleted)

	require.NoError(t, s.HoverEdge(eid("e1-2")))
	deleted, err = s.DeleteHoveredEdge()
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Empty(t, edgeIDs(s.Graph()))
	_, ok := s.UI().HoveredEdge()
	assert.False(t, ok)

	require.NoError(t, s.HoverNode(nid("1")))
	deleted, err = s.DeleteHoveredNode()
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, []string{"2"}, nodeIDs(s.Graph()))
	_, ok = s.UI().HoveredNode()
	assert.False(t, ok)
}

func TestDeleteNodeClearsHoveredCascadedEdge(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.HoverEdge(eid("e1-2")))

	_, err := s.DeleteNode(nid("2"))
	require.NoError(t, err)

	_, ok := s.UI().HoveredEdge()
	assert.False(t, ok)
}

func TestRemoveElements(t *testing.T) {
	s := newTestSession(t)
	_, err := s.CreateNode()
	require.NoError(t, err)
	_, err = s.Connect(nid("2"), nid("3"))
	require.NoError(t, err)
	_, err = s.Connect(nid("3"), nid("3"))
	require.NoError(t, err)

	res := s.RemoveElements(
		[]valueobjects.NodeID{nid("1"), nid("missing")},
		[]valueobjects.EdgeID{eid("e1-2"), eid("e3-3")},
	)

	assert.Equal(t, []valueobjects.NodeID{nid("1")}, res.Nodes)
	assert.Equal(t, []valueobjects.EdgeID{eid("e1-2")}, res.CascadedEdges)
	assert.Equal(t, []valueobjects.EdgeID{eid("e3-3")}, res.Edges, "edge already cascaded is not reported twice")
	assert.Equal(t, []string{"2", "3"}, nodeIDs(s.Graph()))
	assert.Equal(t, []string{"e2-3"}, edgeIDs(s.Graph()))
}

func TestView(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SelectNode(nid("1")))
	require.NoError(t, s.HoverNode(nid("2")))
	require.NoError(t, s.HoverEdge(eid("e1-2")))

	v := s.View()
	assert.Equal(t, "s1", v.SessionID)
	require.Len(t, v.Nodes, 2)
	assert.Equal(t, "1", v.Nodes[0].Data.Label)
	require.Len(t, v.Edges, 1)
	assert.Equal(t, EdgeView{ID: "e1-2", Source: "1", Target: "2"}, v.Edges[0])
	require.Len(t, v.Anchors, 1)

	require.NotNil(t, v.RenamePanel)
	assert.Equal(t, "1", v.RenamePanel.NodeID)
	require.NotNil(t, v.NodeDeleteAffordance)
	assert.Equal(t, "2", v.NodeDeleteAffordance.NodeID)
	require.NotNil(t, v.EdgeDeleteAffordance)
	assert.True(t, v.EdgeDeleteAffordance.Anchor.Equals(valueobjects.MustPosition(10, 55)))

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"data":{"label":"1"}`)
	assert.Contains(t, string(data), `"edgeAnchors":[{"edgeId":"e1-2","position":{"x":10,"y":55}}]`)
}

func TestViewTracksMovesWithoutCaching(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.HoverEdge(eid("e1-2")))
	before := s.View()

	require.NoError(t, s.MoveNode(nid("1"), valueobjects.MustPosition(210, 10)))
	after := s.View()

	assert.True(t, before.EdgeDeleteAffordance.Anchor.Equals(valueobjects.MustPosition(10, 55)))
	assert.True(t, after.EdgeDeleteAffordance.Anchor.Equals(valueobjects.MustPosition(110, 55)))
	assert.Greater(t, after.Version, before.Version)
}

func TestNodeDeleteAffordanceFollowsDrag(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.HoverNode(nid("1")))

	require.NoError(t, s.MoveNode(nid("1"), valueobjects.MustPosition(500, 500)))

	v := s.View()
	require.NotNil(t, v.NodeDeleteAffordance)
	assert.Equal(t, "1", v.NodeDeleteAffordance.NodeID)
	assert.True(t, v.NodeDeleteAffordance.Anchor.Equals(valueobjects.MustPosition(500, 500)))
}

func TestEmptyViewOmitsAffordances(t *testing.T) {
	s := newTestSession(t)

	data, err := json.Marshal(s.View())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "renamePanel")
	assert.NotContains(t, string(data), "nodeDeleteAffordance")
	assert.NotContains(t, string(data), "edgeDeleteAffordance")
}
