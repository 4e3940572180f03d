package models

import (
	"encoding/json"
	"errors"

	"github.com/alex-pricope/gift-selection-service/storage"
)

// SelectGiftRequest documents the select-gift body. Any other fields sent by
// the client are stored alongside these.
type SelectGiftRequest struct {
	GiftID        string `json:"giftId" example:"G1"`
	GiftName      string `json:"giftName" example:"Watch"`
	GiftPrice     string `json:"giftPrice" example:"$99"`
	EmployeeID    string `json:"employeeId" example:"E1"`
	SelectionTime string `json:"selectionTime,omitempty" example:"2024-12-15T10:30:00.000Z"`
}

// ParseSelection decodes a select-gift body. A body that is not a JSON object
// returns the decode error; a required field that is absent, null or "" returns
// a *ValidationError naming it. Present non-string values are accepted as sent.
func ParseSelection(body []byte) (*storage.Selection, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.New("request body is not a JSON object")
	}

	for _, field := range RequiredSelectionFields {
		value, ok := raw[field]
		if !ok || isEmptyValue(value) {
			return nil, &ValidationError{Field: field}
		}
	}

	var selection storage.Selection
	if err := json.Unmarshal(body, &selection); err != nil {
		return nil, err
	}
	return &selection, nil
}

func isEmptyValue(value json.RawMessage) bool {
	var str string
	if err := json.Unmarshal(value, &str); err == nil {
		return str == ""
	}
	return storage.RawFieldText(value) == ""
}

type SelectGiftResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	SelectionID string `json:"selectionId"`
	Action      string `json:"action" enums:"created,updated"`
}

type SelectionsResponse struct {
	Success    bool                 `json:"success"`
	Selections []*storage.Selection `json:"selections" swaggertype:"array,object"`
	Total      int                  `json:"total"`
}

type AggregateResponse struct {
	Success            bool                                  `json:"success"`
	TotalSelections    int                                   `json:"totalSelections"`
	UniqueEmployees    int                                   `json:"uniqueEmployees"`
	GiftCounts         map[string]*storage.GiftCount         `json:"giftCounts"`
	EmployeeSelections map[string]*storage.EmployeeSelection `json:"employeeSelections"`
	Selections         []*storage.Selection                  `json:"selections" swaggertype:"array,object"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func TransformSelectionsFromStorage(selections []*storage.Selection) SelectionsResponse {
	if selections == nil {
		selections = []*storage.Selection{}
	}
	return SelectionsResponse{
		Success:    true,
		Selections: selections,
		Total:      len(selections),
	}
}

func TransformAggregateFromStorage(selections []*storage.Selection) AggregateResponse {
	if selections == nil {
		selections = []*storage.Selection{}
	}
	view := storage.Aggregate(selections)
	return AggregateResponse{
		Success:            true,
		TotalSelections:    view.TotalSelections,
		UniqueEmployees:    view.UniqueEmployees,
		GiftCounts:         view.GiftCounts,
		EmployeeSelections: view.EmployeeSelections,
		Selections:         selections,
	}
}
