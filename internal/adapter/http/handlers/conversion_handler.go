package handlers

import (
	"net/http"

	request "eto_pipeline/internal/adapter/http/dto/request"
	response "eto_pipeline/internal/adapter/http/dto/response"
	"eto_pipeline/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ConversionHandler serves the customer-facing transitions of a quotation
// and the sales orders they produce.
type ConversionHandler struct {
	usecase usecase.IConversionUseCase
}

func NewConversionHandler(uc usecase.IConversionUseCase) *ConversionHandler {
	return &ConversionHandler{usecase: uc}
}

// SendToCustomer godoc
// @Summary      Send the quotation to the customer
// @Tags         conversion
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /orders/{id}/send [post]
func (h *ConversionHandler) SendToCustomer(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	order, err := h.usecase.SendToCustomer(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// RecordCustomerDecision godoc
// @Summary      Record the customer's approval or rejection
// @Tags         conversion
// @Accept       json
// @Produce      json
// @Param        id    path      string                           true  "Order ID"
// @Param        body  body      request.CustomerDecisionRequest  true  "Decision"
// @Success      200   {object}  response.OrderResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /orders/{id}/decision [post]
func (h *ConversionHandler) RecordCustomerDecision(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	var payload request.CustomerDecisionRequest
	if !bindJSON(c, &payload) {
		return
	}
	order, err := h.usecase.RecordCustomerDecision(c.Request.Context(), id, *payload.Approved)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// MarkPOReceived godoc
// @Summary      Record the customer's purchase order
// @Tags         conversion
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Order ID"
// @Param        body  body      request.PORequest  true  "Purchase order"
// @Success      200   {object}  response.OrderResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /orders/{id}/po [post]
func (h *ConversionHandler) MarkPOReceived(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	var payload request.PORequest
	if !bindJSON(c, &payload) {
		return
	}
	order, err := h.usecase.MarkPOReceived(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ConvertToSalesOrder godoc
// @Summary      Convert the quotation into a sales order
// @Description  Idempotent: repeated calls return the existing sales order with already_converted set.
// @Tags         conversion
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true   "Order ID"
// @Param        body  body      request.ConvertRequest  false  "Customer PO override"
// @Success      201   {object}  response.ConversionResponse
// @Success      200   {object}  response.ConversionResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /orders/{id}/convert [post]
func (h *ConversionHandler) ConvertToSalesOrder(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	var payload request.ConvertRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	res, err := h.usecase.ConvertToSalesOrder(c.Request.Context(), id, payload.PONumber)
	if err != nil {
		writeError(c, err)
		return
	}
	status := http.StatusCreated
	if res.AlreadyConverted {
		status = http.StatusOK
	}
	c.JSON(status, response.FromConversion(res))
}

// GetSalesOrder godoc
// @Summary      Get a sales order
// @Tags         conversion
// @Produce      json
// @Param        id   path      string  true  "Sales order ID"
// @Success      200  {object}  response.SalesOrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sales-orders/{id} [get]
func (h *ConversionHandler) GetSalesOrder(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	so, err := h.usecase.GetSalesOrder(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSalesOrder(so))
}
