package handlers

import (
	"context"
	"net/http"

	request "eto_pipeline/internal/adapter/http/dto/request"
	response "eto_pipeline/internal/adapter/http/dto/response"
	"eto_pipeline/internal/domain/entities"
	"eto_pipeline/internal/domain/revision"
	"eto_pipeline/internal/usecase"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves quotation editing and pipeline reads.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder godoc
// @Summary      Create a quotation
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateOrderRequest  true  "Quotation"
// @Success      201   {object}  response.OrderResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if !bindJSON(c, &payload) {
		return
	}
	order, err := h.usecase.CreateOrder(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// GetOrder godoc
// @Summary      Get a quotation
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	order, err := h.usecase.GetOrder(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// GetStage godoc
// @Summary      Resolve the pipeline stage of a quotation
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.StageResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id}/stage [get]
func (h *OrderHandler) GetStage(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	stage, err := h.usecase.ResolveStage(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.StageResponse{OrderID: id, Stage: string(stage)})
}

// GetPipeline godoc
// @Summary      Quotation with its BOQ, drawing and sales order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.PipelineResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id}/pipeline [get]
func (h *OrderHandler) GetPipeline(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	p, err := h.usecase.GetPipeline(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPipeline(p))
}

// AddItem godoc
// @Summary      Add a line item and recompute totals
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "Order ID"
// @Param        body  body      request.LineItemRequest  true  "Line item"
// @Success      201   {object}  response.OrderResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /orders/{id}/items [post]
func (h *OrderHandler) AddItem(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	var payload request.LineItemRequest
	if !bindJSON(c, &payload) {
		return
	}
	order, err := h.usecase.AddItem(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// UpdateItem godoc
// @Summary      Edit a line item and recompute totals
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id      path      string                        true  "Order ID"
// @Param        itemId  path      string                        true  "Line item ID"
// @Param        body    body      request.LineItemPatchRequest  true  "Changed fields"
// @Success      200     {object}  response.OrderResponse
// @Failure      404     {object}  pkg.HTTPError
// @Router       /orders/{id}/items/{itemId} [patch]
func (h *OrderHandler) UpdateItem(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathParam(c, "itemId")
	if !ok {
		return
	}
	var payload request.LineItemPatchRequest
	if !bindJSON(c, &payload) {
		return
	}
	order, err := h.usecase.UpdateItem(c.Request.Context(), id, itemID, payload.ToPatch())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// RemoveItem godoc
// @Summary      Remove a line item and recompute totals
// @Tags         orders
// @Produce      json
// @Param        id      path      string  true  "Order ID"
// @Param        itemId  path      string  true  "Line item ID"
// @Success      200     {object}  response.OrderResponse
// @Failure      404     {object}  pkg.HTTPError
// @Router       /orders/{id}/items/{itemId} [delete]
func (h *OrderHandler) RemoveItem(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathParam(c, "itemId")
	if !ok {
		return
	}
	order, err := h.usecase.RemoveItem(c.Request.Context(), id, itemID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// SaveDraft godoc
// @Summary      Save the quotation as a draft (minor revision)
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "Order ID"
// @Param        body  body      request.OrderHeaderRequest  false "Header changes"
// @Success      200   {object}  response.OrderResponse
// @Router       /orders/{id}/draft [post]
func (h *OrderHandler) SaveDraft(c *gin.Context) {
	h.saveHeader(c, h.usecase.SaveDraft)
}

// UpdateOrder godoc
// @Summary      Update the quotation (major revision)
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "Order ID"
// @Param        body  body      request.OrderHeaderRequest  true  "Header changes"
// @Success      200   {object}  response.OrderResponse
// @Router       /orders/{id} [put]
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	h.saveHeader(c, h.usecase.UpdateOrder)
}

func (h *OrderHandler) saveHeader(c *gin.Context, save func(ctx context.Context, orderID string, in usecase.OrderHeaderInput) (entities.Order, error)) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	var payload request.OrderHeaderRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	order, err := save(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// AttachEngineering godoc
// @Summary      Link an engineering project to the quotation
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path      string                            true  "Order ID"
// @Param        body  body      request.AttachEngineeringRequest  true  "Project"
// @Success      200   {object}  response.OrderResponse
// @Router       /orders/{id}/engineering [post]
func (h *OrderHandler) AttachEngineering(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	var payload request.AttachEngineeringRequest
	if !bindJSON(c, &payload) {
		return
	}
	order, err := h.usecase.AttachEngineering(c.Request.Context(), id, payload.EngineeringProjectID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// NextRevision godoc
// @Summary      Preview the next revision identifier
// @Tags         revisions
// @Produce      json
// @Param        current  query     string  false  "Current revision"
// @Param        kind     query     string  false  "minor or major"
// @Success      200      {object}  response.RevisionResponse
// @Router       /revisions/next [get]
func (h *OrderHandler) NextRevision(c *gin.Context) {
	current := c.Query("current")
	kind := revision.ParseKind(c.Query("kind"))
	c.JSON(http.StatusOK, response.RevisionResponse{
		Current: current,
		Kind:    string(kind),
		Next:    h.usecase.NextRevision(current, kind),
	})
}
