package calculation

import (
	"fmt"

	"github.com/jtor014/aussie-fire-engine/internal/domain"
)

// Dispatch is the engine's stand-in for the worker-style message transport
// spec.md §1 places out of scope: it accepts one of the five operation
// envelopes, validates, runs the corresponding operation, and returns an
// Envelope{id, ok, result|error} (spec.md §6). A real host (the CLI driver
// here, or a future message-queue worker) only needs to shuttle bytes to
// and from Dispatch.
func (ce *CalculationEngine) Dispatch(id, op string, payload any) domain.Envelope {
	result, err := ce.dispatchOp(op, payload)
	if err != nil {
		return domain.Envelope{ID: id, OK: false, Error: err.Error()}
	}
	return domain.Envelope{ID: id, OK: true, Result: result}
}

func (ce *CalculationEngine) dispatchOp(op string, payload any) (any, error) {
	switch op {
	case "compute-decision":
		req, ok := payload.(domain.ComputeDecisionRequest)
		if !ok {
			return nil, fmt.Errorf("compute-decision: payload must be a ComputeDecisionRequest")
		}
		return ce.ComputeDecision(req)

	case "optimize-savings-split":
		req, ok := payload.(domain.OptimizeSavingsSplitRequest)
		if !ok {
			return nil, fmt.Errorf("optimize-savings-split: payload must be an OptimizeSavingsSplitRequest")
		}
		if err := ValidateHousehold(&req.Household); err != nil {
			return nil, err
		}
		result := ce.OptimizeSavingsSplit(&req.Household, req.Policy, req.Opts)
		return result, nil

	case "earliest-age-for-plan":
		req, ok := payload.(domain.EarliestAgeForPlanRequest)
		if !ok {
			return nil, fmt.Errorf("earliest-age-for-plan: payload must be an EarliestAgeForPlanRequest")
		}
		if err := ValidateHousehold(&req.Household); err != nil {
			return nil, err
		}
		result := ce.FindEarliestAgeForPlan(&req.Household, req.Plan, nil)
		return result, nil

	case "optimize-split-for-plan":
		req, ok := payload.(domain.OptimizeSplitForPlanRequest)
		if !ok {
			return nil, fmt.Errorf("optimize-split-for-plan: payload must be an OptimizeSplitForPlanRequest")
		}
		if err := ValidateHousehold(&req.Household); err != nil {
			return nil, err
		}
		result := ce.OptimizeSavingsSplitForPlan(&req.Household, req.Plan, req.Policy, req.Opts)
		return result, nil

	case "allocate-concessional-by-mtr":
		req, ok := payload.(domain.AllocateConcessionalByMTRRequest)
		if !ok {
			return nil, fmt.Errorf("allocate-concessional-by-mtr: payload must be an AllocateConcessionalByMTRRequest")
		}
		result := ce.AllocateConcessionalByMTR(req.TotalGross, req.People)
		return result, nil

	default:
		return nil, fmt.Errorf("unknown operation %q", op)
	}
}

// ComputeDecision is the compute-decision operation of spec.md §6: the
// earliest theoretical and viable ages, the sustainable spend, the bridge
// report, the full path, and (when per-person MTR data is supplied and the
// household has a PreFireSavingsSplit) a recommended concessional split.
func (ce *CalculationEngine) ComputeDecision(req domain.ComputeDecisionRequest) (domain.DecisionResult, error) {
	h := &req.Household
	if err := ValidateHousehold(h); err != nil {
		return domain.DecisionResult{}, err
	}

	retireAge := 0
	if req.ForceRetireAge != nil {
		retireAge = *req.ForceRetireAge
	}

	viable := ce.FindEarliestViable(h)

	var theoreticalAge *int
	var sBase = viable.SBase
	var path = viable.Path
	var bridgeReport = viable.Bridge
	var depleted bool

	if req.ForceRetireAge != nil {
		sol := ce.SolveSBaseForAge(h, retireAge)
		sBase = sol.SBase
		depleted = sol.Depleted
		path = ce.joinPath(h, retireAge)
		bridgeReport = ce.ComputeBridgePV(h, retireAge, sol.SBase, sol.BalancesAtR)
		age := retireAge
		theoreticalAge = &age
	} else {
		theoreticalAge = ce.FindEarliestTheoretical(h)
	}

	status := domain.BridgeStatusShort
	if bridgeReport.Covered {
		status = domain.BridgeStatusCovered
	}

	result := domain.DecisionResult{
		SustainableAnnual: sBase,
		Earliest:          domain.EarliestAges{Theoretical: theoreticalAge, Viable: viable.Age},
		Bridge: domain.DecisionBridge{
			Status: status,
			Years:  bridgeReport.Years,
			Need:   bridgeReport.NeedPV,
			Have:   bridgeReport.HavePV,
		},
		Path:     path,
		Depleted: depleted,
	}

	if len(req.People) > 0 && h.Split != nil {
		capTotal := h.Split.CapPerPerson.Mul(decimalFromInt(h.Split.EligiblePeople))
		alloc := ce.AllocateConcessionalByMTR(capTotal, req.People)
		result.RecommendedSplit = &domain.RecommendedSplit{
			ToSuperPct: h.Split.ToSuperPct,
			PerPerson:  alloc.PerPerson,
		}
	}

	return result, nil
}
