package handlers

import (
	"net/http"

	request "eto_pipeline/internal/adapter/http/dto/request"
	response "eto_pipeline/internal/adapter/http/dto/response"
	"eto_pipeline/internal/domain/workflow"
	"eto_pipeline/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BOQHandler struct {
	usecase usecase.IBOQUseCase
}

func NewBOQHandler(uc usecase.IBOQUseCase) *BOQHandler {
	return &BOQHandler{usecase: uc}
}

// GenerateBOQ godoc
// @Summary      Generate the bill of quantities of a quotation
// @Tags         boq
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true   "Order ID"
// @Param        body  body      request.GenerateBOQRequest  false  "Initial items"
// @Success      201   {object}  response.GenerateBOQResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /orders/{id}/boq [post]
func (h *BOQHandler) GenerateBOQ(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	var payload request.GenerateBOQRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	boq, order, err := h.usecase.GenerateBOQ(c.Request.Context(), id, payload.ToInputs())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.GenerateBOQResponse{BOQ: response.FromBOQ(boq), Order: response.FromOrder(order)})
}

// GetBOQ godoc
// @Summary      Get a bill of quantities
// @Tags         boq
// @Produce      json
// @Param        id   path      string  true  "BOQ ID"
// @Success      200  {object}  response.BOQResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /boqs/{id} [get]
func (h *BOQHandler) GetBOQ(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	boq, err := h.usecase.GetBOQ(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBOQ(boq))
}

// AddItem godoc
// @Summary      Add a BOQ item and recompute the rollup
// @Tags         boq
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "BOQ ID"
// @Param        body  body      request.BOQItemRequest  true  "Item"
// @Success      201   {object}  response.BOQResponse
// @Router       /boqs/{id}/items [post]
func (h *BOQHandler) AddItem(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	var payload request.BOQItemRequest
	if !bindJSON(c, &payload) {
		return
	}
	boq, err := h.usecase.AddItem(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromBOQ(boq))
}

// UpdateItem godoc
// @Summary      Edit a BOQ item and recompute the rollup
// @Tags         boq
// @Accept       json
// @Produce      json
// @Param        id      path      string                       true  "BOQ ID"
// @Param        itemId  path      string                       true  "Item ID"
// @Param        body    body      request.BOQItemPatchRequest  true  "Changed fields"
// @Success      200     {object}  response.BOQResponse
// @Router       /boqs/{id}/items/{itemId} [patch]
func (h *BOQHandler) UpdateItem(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathParam(c, "itemId")
	if !ok {
		return
	}
	var payload request.BOQItemPatchRequest
	if !bindJSON(c, &payload) {
		return
	}
	boq, err := h.usecase.UpdateItem(c.Request.Context(), id, itemID, payload.ToPatch())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBOQ(boq))
}

// RemoveItem godoc
// @Summary      Remove a BOQ item and recompute the rollup
// @Tags         boq
// @Produce      json
// @Param        id      path      string  true  "BOQ ID"
// @Param        itemId  path      string  true  "Item ID"
// @Success      200     {object}  response.BOQResponse
// @Router       /boqs/{id}/items/{itemId} [delete]
func (h *BOQHandler) RemoveItem(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathParam(c, "itemId")
	if !ok {
		return
	}
	boq, err := h.usecase.RemoveItem(c.Request.Context(), id, itemID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBOQ(boq))
}

// SetETOStatus godoc
// @Summary      Move the ETO status forward
// @Tags         boq
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "BOQ ID"
// @Param        body  body      request.StatusRequest  true  "BOQSubmitted, EngineeringDesign, BOMGeneration or ManufacturingReady"
// @Success      200   {object}  response.BOQResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /boqs/{id}/eto-status [patch]
func (h *BOQHandler) SetETOStatus(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	var payload request.StatusRequest
	if !bindJSON(c, &payload) {
		return
	}
	status, err := workflow.ParseETOStatus(payload.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	boq, err := h.usecase.SetETOStatus(c.Request.Context(), id, status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBOQ(boq))
}
