package route

import (
	"fmt"

	"github.com/google/uuid"

	"logistics/pkg/costkernel"
	"logistics/pkg/domain"
	"logistics/pkg/logger"
)

// Build materializes a node-id sequence into a Route. For each adjacent
// pair (u, v) in nodeIDs it selects the first edge in u's adjacency list
// whose target is v; a pair with no matching edge is
// silently skipped, which may yield a route with fewer segments than
// pairs. Per-segment costs, totals, and reliability/service-level/risk
// are then accumulated over whatever segments were produced. A single-id
// sequence (start == goal) yields a zero-segment Route with Reliability 1,
// the empty-product convention. Returns nil if nodeIDs is empty or a
// multi-id sequence produces zero segments.
func Build(store *domain.Store, nodeIDs []string, w costkernel.Weights) *Route {
	if len(nodeIDs) == 0 {
		return nil
	}
	if len(nodeIDs) == 1 {
		return &Route{
			ID:           uuid.NewString(),
			Segments:     []Segment{},
			TotalCost:    costkernel.CostBreakdown{Currency: "USD"},
			ServiceLevel: 1,
			Reliability:  1,
			RiskScore:    costkernel.RiskScore(1),
		}
	}

	routeID := uuid.NewString()
	segments := make([]Segment, 0, len(nodeIDs)-1)
	edges := make([]*domain.Edge, 0, len(nodeIDs)-1)
	totalCost := costkernel.CostBreakdown{Currency: "USD"}
	var totalDistance, totalTime, totalCarbon float64

	for i := 0; i < len(nodeIDs)-1; i++ {
		fromID, toID := nodeIDs[i], nodeIDs[i+1]

		fromNode, ok := store.GetNode(fromID)
		if !ok {
			continue
		}
		toNode, ok := store.GetNode(toID)
		if !ok {
			continue
		}

		edge := firstEdgeTo(store, fromID, toID)
		if edge == nil {
			if logger.Log != nil {
				logger.Debug("no edge found for adjacent pair, skipping segment",
					"from", fromID, "to", toID, "route_id", routeID)
			}
			continue
		}

		cost := costkernel.SegmentBreakdown(fromNode, edge)
		carbon := edge.CarbonEmissions * edge.Distance

		segments = append(segments, Segment{
			ID:              fmt.Sprintf("%s-%d", routeID, i),
			From:            *fromNode,
			To:              *toNode,
			Edge:            *edge,
			Mode:            edge.Mode,
			Distance:        edge.Distance,
			EstimatedTime:   edge.BaseTime,
			Cost:            cost,
			CarbonEmissions: carbon,
		})
		edges = append(edges, edge)

		totalCost = totalCost.Add(cost)
		totalDistance += edge.Distance
		totalTime += edge.BaseTime
		totalCarbon += carbon
	}

	if len(segments) == 0 {
		return nil
	}

	return &Route{
		ID:            routeID,
		Segments:      segments,
		TotalDistance: totalDistance,
		TotalTime:     totalTime,
		TotalCost:     totalCost,
		TotalCarbon:   totalCarbon,
		ServiceLevel:  costkernel.ServiceLevel(edges),
		Reliability:   costkernel.Reliability(edges),
		RiskScore:     costkernel.RiskScore(costkernel.Reliability(edges)),
	}
}

// firstEdgeTo returns the first outgoing edge of fromID whose target is
// toID, honoring adjacency insertion order, or nil if none matches.
func firstEdgeTo(store *domain.Store, fromID, toID string) *domain.Edge {
	for _, e := range store.OutgoingEdges(fromID) {
		if e.Target == toID {
			return e
		}
	}
	return nil
}
