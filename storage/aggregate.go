package storage

type GiftCount struct {
	GiftName  string   `json:"giftName"`
	GiftPrice string   `json:"giftPrice"`
	Count     int      `json:"count"`
	Employees []string `json:"employees"`
}

type EmployeeSelection struct {
	GiftID     string `json:"giftId"`
	GiftName   string `json:"giftName"`
	SelectedAt string `json:"selectedAt"`
}

type AggregateView struct {
	TotalSelections    int
	UniqueEmployees    int
	GiftCounts         map[string]*GiftCount
	EmployeeSelections map[string]*EmployeeSelection
}

// Aggregate summarizes selections per gift and per employee. A gift's name and
// price come from the last record scanned for it, so they follow the most
// recent selection rather than a catalog.
func Aggregate(selections []*Selection) *AggregateView {
	view := &AggregateView{
		TotalSelections:    len(selections),
		GiftCounts:         make(map[string]*GiftCount),
		EmployeeSelections: make(map[string]*EmployeeSelection),
	}

	for _, sel := range selections {
		gift, ok := view.GiftCounts[sel.GiftID]
		if !ok {
			gift = &GiftCount{Employees: []string{}}
			view.GiftCounts[sel.GiftID] = gift
		}
		gift.GiftName = sel.GiftName
		gift.GiftPrice = sel.GiftPrice
		gift.Count++
		gift.Employees = append(gift.Employees, sel.EmployeeID)

		view.EmployeeSelections[sel.EmployeeID] = &EmployeeSelection{
			GiftID:     sel.GiftID,
			GiftName:   sel.GiftName,
			SelectedAt: sel.SelectedAt(),
		}
	}

	view.UniqueEmployees = len(view.EmployeeSelections)
	return view
}
