package handlers

import (
	"net/http"

	request "eto_pipeline/internal/adapter/http/dto/request"
	response "eto_pipeline/internal/adapter/http/dto/response"
	"eto_pipeline/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DrawingHandler serves engineering drawings and their review workflow.
type DrawingHandler struct {
	usecase usecase.IDrawingUseCase
}

func NewDrawingHandler(uc usecase.IDrawingUseCase) *DrawingHandler {
	return &DrawingHandler{usecase: uc}
}

// SubmitDrawing godoc
// @Summary      Submit an engineering drawing for review
// @Tags         drawings
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "Order ID"
// @Param        body  body      request.SubmitDrawingRequest  true  "Drawing"
// @Success      201   {object}  response.DrawingResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /orders/{id}/drawings [post]
func (h *DrawingHandler) SubmitDrawing(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	var payload request.SubmitDrawingRequest
	if !bindJSON(c, &payload) {
		return
	}
	d, err := h.usecase.SubmitDrawing(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromDrawing(d))
}

// GetDrawing godoc
// @Summary      Get an engineering drawing
// @Tags         drawings
// @Produce      json
// @Param        id   path      string  true  "Drawing ID"
// @Success      200  {object}  response.DrawingResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /drawings/{id} [get]
func (h *DrawingHandler) GetDrawing(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	d, err := h.usecase.GetDrawing(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDrawing(d))
}

// RecordApprovalDecision godoc
// @Summary      Approve or reject one review
// @Tags         drawings
// @Accept       json
// @Produce      json
// @Param        id          path      string                           true  "Drawing ID"
// @Param        approvalId  path      string                           true  "Approval ID"
// @Param        body        body      request.ApprovalDecisionRequest  true  "Decision"
// @Success      200         {object}  response.DrawingResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /drawings/{id}/approvals/{approvalId}/decision [post]
func (h *DrawingHandler) RecordApprovalDecision(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	approvalID, ok := pathParam(c, "approvalId")
	if !ok {
		return
	}
	var payload request.ApprovalDecisionRequest
	if !bindJSON(c, &payload) {
		return
	}
	d, err := h.usecase.RecordApprovalDecision(c.Request.Context(), id, approvalID, payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDrawing(d))
}

// ResubmitApproval godoc
// @Summary      Reset a rejected review to pending
// @Tags         drawings
// @Produce      json
// @Param        id          path      string  true  "Drawing ID"
// @Param        approvalId  path      string  true  "Approval ID"
// @Success      200         {object}  response.DrawingResponse
// @Failure      409         {object}  pkg.HTTPError
// @Router       /drawings/{id}/approvals/{approvalId}/resubmit [post]
func (h *DrawingHandler) ResubmitApproval(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	approvalID, ok := pathParam(c, "approvalId")
	if !ok {
		return
	}
	d, err := h.usecase.ResubmitApproval(c.Request.Context(), id, approvalID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDrawing(d))
}

// AddComment godoc
// @Summary      Add a review comment
// @Tags         drawings
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Drawing ID"
// @Param        body  body      request.CommentRequest  true  "Comment"
// @Success      201   {object}  response.DrawingResponse
// @Router       /drawings/{id}/comments [post]
func (h *DrawingHandler) AddComment(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	var payload request.CommentRequest
	if !bindJSON(c, &payload) {
		return
	}
	d, err := h.usecase.AddComment(c.Request.Context(), id, payload.Author, payload.Text)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromDrawing(d))
}

// ResolveComment godoc
// @Summary      Resolve a review comment
// @Tags         drawings
// @Produce      json
// @Param        id         path      string  true  "Drawing ID"
// @Param        commentId  path      string  true  "Comment ID"
// @Success      200        {object}  response.DrawingResponse
// @Router       /drawings/{id}/comments/{commentId}/resolve [post]
func (h *DrawingHandler) ResolveComment(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	commentID, ok := pathParam(c, "commentId")
	if !ok {
		return
	}
	d, err := h.usecase.ResolveComment(c.Request.Context(), id, commentID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDrawing(d))
}

// ReviseDrawing godoc
// @Summary      Issue the next drawing revision
// @Description  Bumps the lettered revision and resets every review to pending.
// @Tags         drawings
// @Produce      json
// @Param        id   path      string  true  "Drawing ID"
// @Success      200  {object}  response.DrawingResponse
// @Router       /drawings/{id}/revise [post]
func (h *DrawingHandler) ReviseDrawing(c *gin.Context) {
	id, ok := pathParam(c, "id")
	if !ok {
		return
	}
	d, err := h.usecase.ReviseDrawing(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDrawing(d))
}
