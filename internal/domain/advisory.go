package domain

type AdvisoryTier string

const (
	AdvisoryOptimal  AdvisoryTier = "optimal"
	AdvisoryWarning  AdvisoryTier = "warning"
	AdvisoryCritical AdvisoryTier = "critical"
)

const (
	warningLoadThreshold  = 60
	criticalLoadThreshold = 80
)

type Advisory struct {
	Tier    AdvisoryTier `json:"tier"`
	Message string       `json:"message"`
}

type Action string

const (
	ActionAutoAlert        Action = "AUTO_ALERT"
	ActionSuggestRest      Action = "SUGGEST_REST"
	ActionLockHighStress   Action = "LOCK_HIGH_STRESS_MODE"
	ActionSuggestBreathing Action = "SUGGEST_BREATHING"
	ActionReduceTaskLoad   Action = "REDUCE_TASK_LOAD"
	ActionMonitor          Action = "MONITOR"
)

// TierForLoad uses strict comparisons, so 60 and 80 stay in the lower tier.
func TierForLoad(load float64) AdvisoryTier {
	switch {
	case load > criticalLoadThreshold:
		return AdvisoryCritical
	case load > warningLoadThreshold:
		return AdvisoryWarning
	default:
		return AdvisoryOptimal
	}
}

func Advise(load float64) Advisory {
	tier := TierForLoad(load)
	return Advisory{Tier: tier, Message: tier.Message()}
}

func (t AdvisoryTier) Message() string {
	switch t {
	case AdvisoryCritical:
		return "CRITICAL: Cognitive overload. Immediate rest."
	case AdvisoryWarning:
		return "WARNING: Elevated stress. Breathing & hydration."
	case AdvisoryOptimal:
		return "OPTIMAL: Brain condition stable. Mission safe."
	default:
		return ""
	}
}

// SuggestActions returns the autonomous agent's recommendations for a load.
func SuggestActions(load float64) []Action {
	switch TierForLoad(load) {
	case AdvisoryCritical:
		return []Action{ActionAutoAlert, ActionSuggestRest, ActionLockHighStress}
	case AdvisoryWarning:
		return []Action{ActionSuggestBreathing, ActionReduceTaskLoad}
	default:
		return []Action{ActionMonitor}
	}
}
