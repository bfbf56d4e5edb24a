package handlers

import (
	"log/slog"
	"net/http"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
	portssvc "github.com/debugger-rana/library-management-system/internal/core/ports/services"
	"github.com/debugger-rana/library-management-system/internal/dto"
	"github.com/debugger-rana/library-management-system/internal/middleware"
	"github.com/gin-gonic/gin"
)

type memberHandler struct {
	memberService portssvc.MemberSvcFacade
	pageSize      int
}

func registerMemberRoutes(rg *gin.RouterGroup, memberService portssvc.MemberSvcFacade, pageSize int) {
	h := &memberHandler{memberService: memberService, pageSize: pageSize}
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	members := rg.Group("/members")
	{
		members.GET("", h.listMembers)
		members.GET("/:id", h.getMember)
		members.GET("/number/:membershipNo", h.getMemberByNumber)
		members.POST("", adminOnly, h.createMember)
		members.PUT("/:id", adminOnly, h.updateMember)
		members.PUT("/:id/extend", adminOnly, h.extendMembership)
		members.PUT("/:id/cancel", adminOnly, h.cancelMembership)
		members.DELETE("/:id", adminOnly, h.deleteMember)
	}
}

// createMember godoc
// @Summary Register a member
// @Description Mints a MEM number and derives the expiry from the membership class (default 6months).
// @Tags members
// @Accept json
// @Produce json
// @Param member body dto.CreateMemberRequest true "Member details"
// @Success 201 {object} dto.MemberResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to register member"
// @Security BearerAuth
// @Router /members [post]
func (h *memberHandler) createMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	creatorID, ok := actorID(c)
	if !ok {
		return
	}

	member, err := h.memberService.CreateMember(c.Request.Context(), req, creatorID)
	if err != nil {
		handleError(c, err, "Failed to register member")
		return
	}

	logger.Info("Member registered", slog.String("membership_no", member.MembershipNo))
	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

// getMember godoc
// @Summary Get a member
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} dto.MemberResponse
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /members/{id} [get]
func (h *memberHandler) getMember(c *gin.Context) {
	member, err := h.memberService.GetMemberByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err, "Failed to retrieve member")
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

// getMemberByNumber godoc
// @Summary Get a member by membership number
// @Tags members
// @Produce json
// @Param membershipNo path string true "Membership number, e.g. MEM00001"
// @Success 200 {object} dto.MemberResponse
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /members/number/{membershipNo} [get]
func (h *memberHandler) getMemberByNumber(c *gin.Context) {
	member, err := h.memberService.GetMemberByNumber(c.Request.Context(), c.Param("membershipNo"))
	if err != nil {
		handleError(c, err, "Failed to retrieve member")
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

// listMembers godoc
// @Summary List members
// @Tags members
// @Produce json
// @Param limit query int false "Limit" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListMembersResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Security BearerAuth
// @Router /members [get]
func (h *memberHandler) listMembers(c *gin.Context) {
	var params dto.ListMembersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}

	members, err := h.memberService.ListMembers(c.Request.Context(), pageLimit(c, params.Limit, h.pageSize), params.Offset)
	if err != nil {
		handleError(c, err, "Failed to list members")
		return
	}
	c.JSON(http.StatusOK, dto.ToListMembersResponse(members))
}

// updateMember godoc
// @Summary Update a member
// @Description Edits contact details. A class change recomputes the expiry from today.
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param member body dto.UpdateMemberRequest true "Fields to update"
// @Success 200 {object} dto.MemberResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /members/{id} [put]
func (h *memberHandler) updateMember(c *gin.Context) {
	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	updaterID, ok := actorID(c)
	if !ok {
		return
	}

	member, err := h.memberService.UpdateMember(c.Request.Context(), c.Param("id"), req, updaterID)
	if err != nil {
		handleError(c, err, "Failed to update member")
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

// extendMembership godoc
// @Summary Extend a membership
// @Description Adds months (default 6) to the expiry date and reactivates the member.
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param body body dto.ExtendMembershipRequest false "Months to add"
// @Success 200 {object} dto.MemberResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /members/{id}/extend [put]
func (h *memberHandler) extendMembership(c *gin.Context) {
	var req dto.ExtendMembershipRequest
	// An empty body means the default extension.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request format", err)
			return
		}
	}
	updaterID, ok := actorID(c)
	if !ok {
		return
	}

	member, err := h.memberService.ExtendMembership(c.Request.Context(), c.Param("id"), req.Months, updaterID)
	if err != nil {
		handleError(c, err, "Failed to extend membership")
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

// cancelMembership godoc
// @Summary Cancel a membership
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} dto.MemberResponse
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /members/{id}/cancel [put]
func (h *memberHandler) cancelMembership(c *gin.Context) {
	updaterID, ok := actorID(c)
	if !ok {
		return
	}

	member, err := h.memberService.CancelMembership(c.Request.Context(), c.Param("id"), updaterID)
	if err != nil {
		handleError(c, err, "Failed to cancel membership")
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

// deleteMember godoc
// @Summary Delete a member
// @Tags members
// @Param id path string true "Member ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 409 {object} ErrorResponse "Member has loans or requests"
// @Security BearerAuth
// @Router /members/{id} [delete]
func (h *memberHandler) deleteMember(c *gin.Context) {
	if err := h.memberService.DeleteMember(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err, "Failed to delete member")
		return
	}
	c.Status(http.StatusNoContent)
}
