package weather

import (
	"fmt"

	"cropcal/entities"
)

// Feasibility recommendations.
const (
	RecommendProceed  = "proceed"
	RecommendPostpone = "postpone"
	RecommendAdvance  = "advance"
)

// Feasibility is the verdict for one activity against the forecast day
// matching its scheduled date. SuggestedDelayDays is signed: negative means
// move the activity earlier. It is never zero when Feasible is false.
type Feasibility struct {
	Feasible           bool   `json:"feasible"`
	Reason             string `json:"reason"`
	Recommendation     string `json:"recommendation"`
	SuggestedDelayDays int    `json:"suggestedDelayDays,omitempty"`
}

// Evaluate applies the per-category weather rules to one activity. The rule
// table is a deliberate closed policy: the category set is fixed, and changing
// a threshold is a versioned policy change, not a runtime option. When day is
// nil the verdict is feasible/proceed — with no data we never hold the farmer
// back.
func Evaluate(act entities.Activity, day *entities.ForecastDay, optimal entities.OptimalConditions) Feasibility {
	if day == nil {
		return Feasibility{
			Feasible:       true,
			Reason:         "Weather data not available",
			Recommendation: RecommendProceed,
		}
	}

	precip := day.TotalPrecipMm
	maxTemp := day.MaxTempC

	switch act.Category {
	case entities.CategoryIrrigation:
		if precip > 20 {
			return infeasible(fmt.Sprintf("Heavy rain expected (%gmm)", precip), RecommendPostpone, 2)
		}
	case entities.CategorySpraying:
		if precip > 5 {
			return infeasible(fmt.Sprintf("Rain expected (%gmm), will wash away spray", precip), RecommendPostpone, 2)
		}
		if maxTemp > 35 {
			return infeasible(fmt.Sprintf("Extreme heat (%g°C), spray may evaporate", maxTemp), RecommendPostpone, 1)
		}
	case entities.CategoryFertilization:
		if precip > 50 {
			return infeasible(fmt.Sprintf("Heavy rain (%gmm) will leach nutrients", precip), RecommendPostpone, 2)
		}
	case entities.CategoryHarvesting:
		if precip > 10 {
			return infeasible(fmt.Sprintf("Rain expected (%gmm), produce quality will be affected", precip), RecommendAdvance, -1)
		}
	case entities.CategoryPlanting:
		if precip > 40 {
			return infeasible(fmt.Sprintf("Heavy rain (%gmm), soil too wet", precip), RecommendPostpone, 2)
		}
	}
	// weeding and maintenance have no weather constraint

	return Feasibility{
		Feasible:       true,
		Reason:         "Weather conditions are suitable",
		Recommendation: RecommendProceed,
	}
}

func infeasible(reason, action string, delayDays int) Feasibility {
	return Feasibility{
		Reason:             reason,
		Recommendation:     action,
		SuggestedDelayDays: delayDays,
	}
}
