// Package constraints validates a built route.Route against a
// route.Constraints snapshot: one function per concern, each returning
// field-tagged application errors that are merged into a single
// ValidationErrors collection.
package constraints

import (
	"fmt"

	"logistics/pkg/apperror"
	"logistics/pkg/route"
)

// Validate runs every hard-constraint check against r and returns the
// merged result. Informational fields on c (priority tiers, soft
// preferences beyond preferLowEmission) never cause rejection here.
func Validate(r *route.Route, c *route.Constraints) *apperror.ValidationErrors {
	result := apperror.NewValidationErrors()
	if c == nil {
		return result
	}

	result.Merge(checkTimeWindows(r, c.TimeWindows))
	result.Merge(checkCapacity(r, c.Capacity))
	result.Merge(checkEmissions(r, c.Emissions))
	result.Merge(checkAvoidNodes(r, c.AvoidNodes))
	result.Merge(checkRequiredNodes(r, c.RequiredNodes))

	return result
}

// checkTimeWindows fails any hard time window whose duration is shorter
// than the route's total transit time.
func checkTimeWindows(r *route.Route, windows []route.TimeWindow) *apperror.ValidationErrors {
	result := apperror.NewValidationErrors()
	routeMillis := r.TotalTime * 60_000

	for i, w := range windows {
		if !w.HardConstraint {
			continue
		}
		budget := float64(w.End.Sub(w.Start).Milliseconds())
		if routeMillis > budget {
			result.AddErrorWithField(apperror.CodeConstraintViolation,
				"route transit time exceeds the hard time window",
				fmt.Sprintf("constraints.timeWindows[%d]", i))
		}
	}
	return result
}

// checkCapacity fails if any segment's edge capacity is below the
// required maximum weight.
func checkCapacity(r *route.Route, capacity route.CapacityConstraint) *apperror.ValidationErrors {
	result := apperror.NewValidationErrors()
	if capacity.MaxWeight <= 0 {
		return result
	}

	for i, seg := range r.Segments {
		if seg.Edge.Capacity < capacity.MaxWeight {
			result.AddErrorWithField(apperror.CodeConstraintViolation,
				"segment capacity is below the required maximum weight",
				fmt.Sprintf("segments[%d].edge.capacity", i))
		}
	}
	return result
}

// checkEmissions fails if total carbon exceeds the ceiling, unless the
// caller marked the preference as soft via PreferLowEmission.
func checkEmissions(r *route.Route, emissions route.EmissionsConstraint) *apperror.ValidationErrors {
	result := apperror.NewValidationErrors()
	if emissions.MaxCO2 <= 0 {
		return result
	}
	if r.TotalCarbon <= emissions.MaxCO2 {
		return result
	}
	if emissions.PreferLowEmission {
		result.AddWarning(apperror.CodeConstraintViolation,
			"total carbon exceeds the ceiling, accepted as a soft preference")
		return result
	}

	result.AddErrorWithField(apperror.CodeConstraintViolation,
		"total carbon exceeds the emissions ceiling", "totalCarbon")
	return result
}

// checkAvoidNodes fails if any segment endpoint equals a forbidden node.
func checkAvoidNodes(r *route.Route, avoid []string) *apperror.ValidationErrors {
	result := apperror.NewValidationErrors()
	if len(avoid) == 0 {
		return result
	}

	forbidden := make(map[string]bool, len(avoid))
	for _, id := range avoid {
		forbidden[id] = true
	}

	for i, seg := range r.Segments {
		if forbidden[seg.From.ID] || forbidden[seg.To.ID] {
			result.AddErrorWithField(apperror.CodeConstraintViolation,
				"route passes through a forbidden node",
				fmt.Sprintf("segments[%d]", i))
		}
	}
	return result
}

// checkRequiredNodes fails if any required node never appears as a
// segment endpoint.
func checkRequiredNodes(r *route.Route, required []string) *apperror.ValidationErrors {
	result := apperror.NewValidationErrors()
	if len(required) == 0 {
		return result
	}

	present := make(map[string]bool, len(r.Segments)*2)
	for _, seg := range r.Segments {
		present[seg.From.ID] = true
		present[seg.To.ID] = true
	}

	for _, id := range required {
		if !present[id] {
			result.AddErrorWithField(apperror.CodeConstraintViolation,
				"required node does not appear on the route",
				fmt.Sprintf("requiredNodes[%s]", id))
		}
	}
	return result
}
