package models

import "github.com/alex-pricope/gift-selection-service/storage"

const (
	MessageSelectionSaved = "Gift selection saved successfully"
	MessageInternalError  = "Internal server error"
	StatusHealthy         = "healthy"
)

// RequiredSelectionFields is checked in order; the first missing one is reported.
var RequiredSelectionFields = []string{
	storage.FieldGiftID,
	storage.FieldGiftName,
	storage.FieldGiftPrice,
	storage.FieldEmployeeID,
}

type ErrorResponse struct {
	Error string `json:"error"`
}
