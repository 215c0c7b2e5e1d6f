package handlers

import (
	"grapheditor/domain/core/valueobjects"
)

func parseNodeIDs(raw []string) ([]valueobjects.NodeID, error) {
	ids := make([]valueobjects.NodeID, 0, len(raw))
	for _, s := range raw {
		id, err := valueobjects.NewNodeID(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseEdgeIDs(raw []string) ([]valueobjects.EdgeID, error) {
	ids := make([]valueobjects.EdgeID, 0, len(raw))
	for _, s := range raw {
		id, err := valueobjects.NewEdgeID(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func edgeIDStrings(ids []valueobjects.EdgeID) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func nodeIDStrings(ids []valueobjects.NodeID) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
