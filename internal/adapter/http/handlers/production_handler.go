package handlers

import (
	"net/http"

	request "eto_pipeline/internal/adapter/http/dto/request"
	response "eto_pipeline/internal/adapter/http/dto/response"
	"eto_pipeline/internal/domain/production"
	"eto_pipeline/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ProductionHandler serves work orders and production journeys.
type ProductionHandler struct {
	usecase usecase.IProductionUseCase
}

func NewProductionHandler(uc usecase.IProductionUseCase) *ProductionHandler {
	return &ProductionHandler{usecase: uc}
}

// CreateWorkOrder godoc
// @Summary      Open a work order for a sales order
// @Tags         production
// @Produce      json
// @Param        id   path      string  true  "Sales order ID"
// @Success      201  {object}  response.WorkOrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sales-orders/{id}/work-orders [post]
func (h *ProductionHandler) CreateWorkOrder(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	w, err := h.usecase.CreateWorkOrder(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromWorkOrder(w))
}

// GetWorkOrder godoc
// @Summary      Get a work order
// @Tags         production
// @Produce      json
// @Param        id   path      string  true  "Work order ID"
// @Success      200  {object}  response.WorkOrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /work-orders/{id} [get]
func (h *ProductionHandler) GetWorkOrder(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	w, err := h.usecase.GetWorkOrder(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(w))
}

// AdvanceWorkOrderStatus godoc
// @Summary      Move a work order to another status
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Work order ID"
// @Param        body  body      request.StatusRequest  true  "Target status"
// @Success      200   {object}  response.WorkOrderResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /work-orders/{id}/status [patch]
func (h *ProductionHandler) AdvanceWorkOrderStatus(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	var payload request.StatusRequest
	if !bindJSON(c, &payload) {
		return
	}
	to, err := production.ParseWorkOrderStatus(payload.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	w, err := h.usecase.AdvanceWorkOrderStatus(c.Request.Context(), id, to)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(w))
}

// SetWorkOrderProgress godoc
// @Summary      Set work order progress (clamped to 0..100)
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "Work order ID"
// @Param        body  body      request.ProgressRequest  true  "Progress"
// @Success      200   {object}  response.WorkOrderResponse
// @Router       /work-orders/{id}/progress [patch]
func (h *ProductionHandler) SetWorkOrderProgress(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	var payload request.ProgressRequest
	if !bindJSON(c, &payload) {
		return
	}
	w, err := h.usecase.SetWorkOrderProgress(c.Request.Context(), id, *payload.Progress)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(w))
}

// CreateJourney godoc
// @Summary      Start a production journey for a work order
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true   "Work order ID"
// @Param        body  body      request.CreateJourneyRequest  false  "Steps"
// @Success      201   {object}  response.JourneyResponse
// @Router       /work-orders/{id}/journeys [post]
func (h *ProductionHandler) CreateJourney(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	var payload request.CreateJourneyRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	j, err := h.usecase.CreateJourney(c.Request.Context(), id, payload.Steps)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromJourney(j))
}

// GetJourney godoc
// @Summary      Get a production journey
// @Tags         production
// @Produce      json
// @Param        id   path      string  true  "Journey ID"
// @Success      200  {object}  response.JourneyResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /journeys/{id} [get]
func (h *ProductionHandler) GetJourney(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	j, err := h.usecase.GetJourney(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJourney(j))
}

// AssignJourneyResources godoc
// @Summary      Replace the workstations and operators of a journey
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        id    path      string                           true  "Journey ID"
// @Param        body  body      request.JourneyResourcesRequest  true  "Resources"
// @Success      200   {object}  response.JourneyResponse
// @Router       /journeys/{id}/resources [put]
func (h *ProductionHandler) AssignJourneyResources(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	var payload request.JourneyResourcesRequest
	if !bindJSON(c, &payload) {
		return
	}
	j, err := h.usecase.AssignJourneyResources(c.Request.Context(), id, payload.Workstations, payload.Operators)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJourney(j))
}

// SetJourneyStepStatus godoc
// @Summary      Set the status of one journey step
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Journey ID"
// @Param        step  path      string                 true  "Step name"
// @Param        body  body      request.StatusRequest  true  "pending, in-progress or completed"
// @Success      200   {object}  response.JourneyResponse
// @Router       /journeys/{id}/steps/{step} [patch]
func (h *ProductionHandler) SetJourneyStepStatus(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	step, ok := pathParam(c, "step")
	if !ok {
		return
	}
	var payload request.StatusRequest
	if !bindJSON(c, &payload) {
		return
	}
	status, err := production.ParseStepStatus(payload.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	j, err := h.usecase.SetJourneyStepStatus(c.Request.Context(), id, step, status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJourney(j))
}

// SetJourneyStatus godoc
// @Summary      Pause, resume or complete a journey
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Journey ID"
// @Param        body  body      request.StatusRequest  true  "Active, Paused or Completed"
// @Success      200   {object}  response.JourneyResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /journeys/{id}/status [patch]
func (h *ProductionHandler) SetJourneyStatus(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	var payload request.StatusRequest
	if !bindJSON(c, &payload) {
		return
	}
	to, err := production.ParseJourneyStatus(payload.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	j, err := h.usecase.SetJourneyStatus(c.Request.Context(), id, to)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJourney(j))
}
