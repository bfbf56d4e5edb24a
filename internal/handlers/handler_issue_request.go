package handlers

import (
	"context"
	"net/http"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
	portssvc "github.com/debugger-rana/library-management-system/internal/core/ports/services"
	"github.com/debugger-rana/library-management-system/internal/dto"
	"github.com/debugger-rana/library-management-system/internal/middleware"
	"github.com/gin-gonic/gin"
)

type issueRequestHandler struct {
	requestService portssvc.IssueRequestSvcFacade
	pageSize       int
}

func registerIssueRequestRoutes(rg *gin.RouterGroup, rs portssvc.IssueRequestSvcFacade, pageSize int) {
	h := &issueRequestHandler{requestService: rs, pageSize: pageSize}
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	reqs := rg.Group("/issue-requests")
	{
		reqs.GET("", h.listRequests)
		reqs.POST("", h.createRequest)
		reqs.GET("/:id", h.getRequest)
		reqs.PUT("/:id/approve", adminOnly, h.approveRequest)
		reqs.PUT("/:id/reject", adminOnly, h.rejectRequest)
		reqs.DELETE("/:id", adminOnly, h.deleteRequest)
	}
}

// createRequest godoc
// @Summary Request an item for a member
// @Description Creates a pending request. Nothing is reserved.
// @Tags issue-requests
// @Accept json
// @Produce json
// @Param request body dto.CreateIssueRequestRequest true "Request details"
// @Success 201 {object} dto.IssueRequestResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Item or member not found"
// @Failure 422 {object} ErrorResponse "No copies available or membership inactive"
// @Security BearerAuth
// @Router /issue-requests [post]
func (h *issueRequestHandler) createRequest(c *gin.Context) {
	var req dto.CreateIssueRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	creatorID, ok := actorID(c)
	if !ok {
		return
	}

	created, err := h.requestService.CreateRequest(c.Request.Context(), req, creatorID)
	if err != nil {
		handleError(c, err, "Failed to create issue request")
		return
	}
	c.JSON(http.StatusCreated, dto.ToIssueRequestResponse(created))
}

// getRequest godoc
// @Summary Get an issue request
// @Tags issue-requests
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} dto.IssueRequestResponse
// @Failure 404 {object} ErrorResponse "Request not found"
// @Security BearerAuth
// @Router /issue-requests/{id} [get]
func (h *issueRequestHandler) getRequest(c *gin.Context) {
	req, err := h.requestService.GetRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err, "Failed to retrieve issue request")
		return
	}
	c.JSON(http.StatusOK, dto.ToIssueRequestResponse(req))
}

// listRequests godoc
// @Summary List issue requests
// @Tags issue-requests
// @Produce json
// @Param status query string false "pending, approved or rejected"
// @Param limit query int false "Limit" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListIssueRequestsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Security BearerAuth
// @Router /issue-requests [get]
func (h *issueRequestHandler) listRequests(c *gin.Context) {
	var params dto.ListIssueRequestsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}
	params.Limit = pageLimit(c, params.Limit, h.pageSize)

	reqs, err := h.requestService.ListRequests(c.Request.Context(), params)
	if err != nil {
		handleError(c, err, "Failed to list issue requests")
		return
	}
	c.JSON(http.StatusOK, dto.ToListIssueRequestsResponse(reqs))
}

// approveRequest godoc
// @Summary Approve an issue request
// @Tags issue-requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param body body dto.ProcessIssueRequestRequest false "Remarks"
// @Success 200 {object} dto.IssueRequestResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 409 {object} ErrorResponse "Already processed"
// @Security BearerAuth
// @Router /issue-requests/{id}/approve [put]
func (h *issueRequestHandler) approveRequest(c *gin.Context) {
	h.process(c, h.requestService.ApproveRequest, "Failed to approve issue request")
}

// rejectRequest godoc
// @Summary Reject an issue request
// @Tags issue-requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param body body dto.ProcessIssueRequestRequest false "Remarks"
// @Success 200 {object} dto.IssueRequestResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 409 {object} ErrorResponse "Already processed"
// @Security BearerAuth
// @Router /issue-requests/{id}/reject [put]
func (h *issueRequestHandler) rejectRequest(c *gin.Context) {
	h.process(c, h.requestService.RejectRequest, "Failed to reject issue request")
}

type decisionFunc func(ctx context.Context, requestID, remarks, actorID string) (*domain.IssueRequest, error)

func (h *issueRequestHandler) process(c *gin.Context, decide decisionFunc, failMsg string) {
	var body dto.ProcessIssueRequestRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			badRequest(c, "Invalid request format", err)
			return
		}
	}
	processorID, ok := actorID(c)
	if !ok {
		return
	}

	req, err := decide(c.Request.Context(), c.Param("id"), body.Remarks, processorID)
	if err != nil {
		handleError(c, err, failMsg)
		return
	}
	c.JSON(http.StatusOK, dto.ToIssueRequestResponse(req))
}

// deleteRequest godoc
// @Summary Delete an issue request
// @Tags issue-requests
// @Param id path string true "Request ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Security BearerAuth
// @Router /issue-requests/{id} [delete]
func (h *issueRequestHandler) deleteRequest(c *gin.Context) {
	if err := h.requestService.DeleteRequest(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err, "Failed to delete issue request")
		return
	}
	c.Status(http.StatusNoContent)
}
