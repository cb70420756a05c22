package domain

const (
	LoadStatusOK   = "OK"
	LoadStatusHigh = "HIGH LOAD"
)

// Ranges for the synthetic demo tables.
var (
	OperatorLoadRange = Range{Low: 20, High: 90}
	ZoneLoadRange     = Range{Low: 25, High: 75}
)

var BattlefieldZones = []string{"North", "East", "West", "South"}

const TeamSize = 5

type OperatorLoad struct {
	Operator string  `json:"operator"`
	Load     float64 `json:"load"`
	Status   string  `json:"status"`
}

type ZoneLoad struct {
	Zone    string  `json:"zone"`
	AvgLoad float64 `json:"avg_load"`
	Status  string  `json:"status"`
}

// LoadStatus labels a load with the same threshold the warning advisory uses.
func LoadStatus(load float64) string {
	if load > warningLoadThreshold {
		return LoadStatusHigh
	}
	return LoadStatusOK
}
