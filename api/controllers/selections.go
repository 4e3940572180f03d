package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/alex-pricope/gift-selection-service/api/models"
	"github.com/alex-pricope/gift-selection-service/logging"
	"github.com/alex-pricope/gift-selection-service/storage"
	"github.com/gin-gonic/gin"
)

type SelectionController struct {
	selectionsStorage storage.SelectionStorage
}

func NewSelectionController(s storage.SelectionStorage) *SelectionController {
	return &SelectionController{
		selectionsStorage: s,
	}
}

func (c *SelectionController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.POST("/select-gift", c.selectGift)
	group.GET("/selections", c.getSelections)
	group.GET("/aggregate", c.getAggregate)
}

// selectGift godoc
// @Summary Select a gift
// @Description Stores the employee's gift choice, replacing any earlier choice by the same employee
// @Tags selections
// @Accept json
// @Produce json
// @Param selection body models.SelectGiftRequest true "Gift selection"
// @Success 200 {object} models.SelectGiftResponse
// @Failure 400 {object} models.ErrorResponse "Missing required field"
// @Failure 500 {object} models.ErrorResponse "Unexpected internal error"
// @Router /api/select-gift [post]
func (c *SelectionController) selectGift(g *gin.Context) {
	body, err := io.ReadAll(g.Request.Body)
	if err != nil {
		logging.Log.Errorf("SELECTION: failed to read request body: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: models.MessageInternalError})
		return
	}

	selection, err := models.ParseSelection(body)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			logging.Log.Warnf("SELECTION: rejected request: %v", validationErr)
			g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: validationErr.Error()})
			return
		}
		logging.Log.Errorf("SELECTION: failed to parse request body: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: models.MessageInternalError})
		return
	}

	result, err := c.selectionsStorage.Upsert(g.Request.Context(), selection)
	if err != nil {
		logging.Log.Errorf("SELECTION: failed to save selection for %s: %v", selection.EmployeeID, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: models.MessageInternalError})
		return
	}

	saved := result.Selection
	if result.Previous != nil {
		logging.Log.Infof("SELECTION: updated %s -> %s (was %s)", saved.EmployeeID, saved.GiftName, result.Previous.GiftName)
	} else {
		logging.Log.Infof("SELECTION: created %s -> %s", saved.EmployeeID, saved.GiftName)
	}

	g.JSON(http.StatusOK, &models.SelectGiftResponse{
		Success:     true,
		Message:     models.MessageSelectionSaved,
		SelectionID: saved.ID,
		Action:      string(result.Action),
	})
}

// getSelections godoc
// @Summary List all selections
// @Description Returns every stored selection in store order
// @Tags selections
// @Produce json
// @Success 200 {object} models.SelectionsResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/selections [get]
func (c *SelectionController) getSelections(g *gin.Context) {
	selections, err := c.selectionsStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("SELECTION: failed to list selections: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: models.MessageInternalError})
		return
	}

	g.JSON(http.StatusOK, models.TransformSelectionsFromStorage(selections))
}

// getAggregate godoc
// @Summary Aggregate selections
// @Description Counts selections per gift and lists the current gift per employee
// @Tags selections
// @Produce json
// @Success 200 {object} models.AggregateResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/aggregate [get]
func (c *SelectionController) getAggregate(g *gin.Context) {
	selections, err := c.selectionsStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("SELECTION: failed to load selections for aggregation: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: models.MessageInternalError})
		return
	}

	g.JSON(http.StatusOK, models.TransformAggregateFromStorage(selections))
}
