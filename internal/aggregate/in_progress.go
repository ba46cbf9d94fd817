package aggregate

import (
	"sort"

	"casemonitor/internal/model"
)

const (
	IconInProgress = "🟠"
	IconAssigned   = "🟡"
)

// ActiveCase a case that an operator currently holds
type ActiveCase struct {
	Case *model.Case `json:"case"`
	Icon string      `json:"icon"`
}

// InProgress returns the assigned and in-progress cases, highest score
// first. Equal scores keep input order.
func InProgress(cases []*model.Case) []ActiveCase {
	active := make([]ActiveCase, 0)
	for _, c := range cases {
		switch c.Status {
		case model.CaseStatusInProgress:
			active = append(active, ActiveCase{Case: c, Icon: IconInProgress})
		case model.CaseStatusAssigned:
			active = append(active, ActiveCase{Case: c, Icon: IconAssigned})
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Case.Score > active[j].Case.Score
	})
	return active
}
