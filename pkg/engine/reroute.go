package engine

import (
	"context"

	"logistics/pkg/apperror"
	"logistics/pkg/audit"
	"logistics/pkg/costkernel"
	"logistics/pkg/domain"
	"logistics/pkg/route"
	"logistics/pkg/solver"
)

// rerouteWeights fixes the objective used for a disruption re-solve:
// mostly cost and time, no carbon/risk/service-level preference.
var rerouteWeights = costkernel.Weights{Cost: 0.4, Time: 0.6}

// Reroute removes disruptedEdgeIDs from the store, re-solves from
// currentPosition to the last node of currentRoute under the same
// constraints, and restores every removed edge before returning —
// RESTORE happens even if the solve fails. Every REMOVE/RESTORE pair and
// the overall reroute outcome are recorded through the engine's audit
// logger.
func (e *Engine) Reroute(ctx context.Context, currentPosition string, currentRoute *route.Route, disruptedEdgeIDs []string, c *route.Constraints) (*route.Route, error) {
	if currentRoute == nil || len(currentRoute.Segments) == 0 {
		return nil, apperror.New(apperror.CodeInvalidInput, "current route has no segments")
	}
	goalID := currentRoute.Segments[len(currentRoute.Segments)-1].To.ID

	snapshot := e.snapshotAndRemove(ctx, disruptedEdgeIDs)
	defer e.restore(ctx, snapshot)

	e.stats.rerouteTotal.Add(1)

	cfg := OptimizeConfig{Algorithm: solver.AlgorithmHybrid, Weights: rerouteWeights}
	r, err := e.Optimize(ctx, currentPosition, goalID, c, cfg)

	entry := audit.NewEntry().
		Action(audit.ActionReroute).
		Resource("route", goalID).
		Meta("current_position", currentPosition).
		Meta("disrupted_edges", disruptedEdgeIDs)
	if err != nil {
		entry.Outcome(audit.OutcomeFailure).Error(string(apperror.CodeNotFound), err.Error())
		e.metrics.RecordReroute(false)
	} else {
		entry.Outcome(audit.OutcomeSuccess)
		e.metrics.RecordReroute(true)
	}
	_ = e.audit.Log(ctx, entry.Build())

	return r, err
}

// edgeSnapshot preserves a removed edge so it can be restored regardless
// of how the re-solve between REMOVE and RESTORE turns out.
type edgeSnapshot struct {
	edge *domain.Edge
}

// snapshotAndRemove captures and removes every edge named in edgeIDs
// that still exists in the store. Missing edges are skipped silently —
// a caller may legitimately name an edge already removed by a prior
// disruption.
func (e *Engine) snapshotAndRemove(ctx context.Context, edgeIDs []string) []edgeSnapshot {
	snapshots := make([]edgeSnapshot, 0, len(edgeIDs))
	for _, id := range edgeIDs {
		edge, ok := e.store.GetEdge(id)
		if !ok {
			continue
		}
		snapshot := *edge
		snapshots = append(snapshots, edgeSnapshot{edge: &snapshot})

		e.store.RemoveEdge(id)
		_ = e.audit.Log(ctx, audit.NewEntry().
			Action(audit.ActionRemoveEdge).
			Resource("edge", id).
			Outcome(audit.OutcomeSuccess).
			Build())
	}
	return snapshots
}

// restore re-adds every snapshotted edge to the store. Called via defer
// so it runs whether Optimize succeeded, failed, or the solve path
// panicked.
func (e *Engine) restore(ctx context.Context, snapshots []edgeSnapshot) {
	for _, snapshot := range snapshots {
		e.store.AddEdge(snapshot.edge)
		_ = e.audit.Log(ctx, audit.NewEntry().
			Action(audit.ActionRestoreEdge).
			Resource("edge", snapshot.edge.ID).
			Outcome(audit.OutcomeSuccess).
			Build())
	}
}
