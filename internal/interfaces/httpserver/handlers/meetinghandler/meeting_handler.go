package meetinghandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"agentsync/server/internal/domain/meeting"
	"agentsync/server/internal/interfaces/httpserver/middlewares"
	"agentsync/server/internal/interfaces/httpserver/requests"
	"agentsync/server/internal/interfaces/httpserver/requests/meetingreq"
	"agentsync/server/internal/interfaces/httpserver/responses"
	"agentsync/server/internal/interfaces/httpserver/responses/meetingres"
	"agentsync/server/internal/utils/apperrors"
)

// MeetingHandler handles meeting metadata requests.
type MeetingHandler struct {
	meetings *meeting.Service
	validate *validator.Validate
}

func NewMeetingHandler(meetings *meeting.Service) *MeetingHandler {
	return &MeetingHandler{
		meetings: meetings,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// CreateMeeting handles POST /v1/meetings
// @Summary Schedule a meeting with an agent
// @Tags Meetings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body meetingreq.CreateMeetingRequest true "Meeting details"
// @Success 201 {object} meetingres.MeetingResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /v1/meetings [post]
func (h *MeetingHandler) CreateMeeting(c *gin.Context) {
	usr, ok := middlewares.UserFromContext(c)
	if !ok {
		responses.HandleNewError(c, apperrors.ErrorTypeUnauthorized, "authentication required", "f3b7d2a8-0c3f-45bb-95d4-1b21ff6a0c4e")
		return
	}

	var req meetingreq.CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, apperrors.ErrorTypeValidation, "invalid request body", "5a0f6a7c-8f3a-41b7-8a26-7fe3cbb0ae91")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		responses.HandleNewError(c, apperrors.ErrorTypeValidation, err.Error(), "8f43ed2b-a0b5-4f6a-8b8e-9a51cd70a2f4")
		return
	}

	created, err := h.meetings.Create(c.Request.Context(), usr.ID, req.AgentID, req.Name, req.Metadata)
	if err != nil {
		responses.HandleError(c, err, "failed to create meeting")
		return
	}

	c.JSON(http.StatusCreated, meetingres.NewMeetingResponse(created))
}

// ListMeetings handles GET /v1/meetings
// @Summary List meetings
// @Tags Meetings
// @Security BearerAuth
// @Produce json
// @Param status query string false "Status filter"
// @Param limit query int false "Maximum number of meetings to return"
// @Param offset query int false "Number of meetings to skip"
// @Success 200 {object} meetingres.MeetingListResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /v1/meetings [get]
func (h *MeetingHandler) ListMeetings(c *gin.Context) {
	usr, ok := middlewares.UserFromContext(c)
	if !ok {
		responses.HandleNewError(c, apperrors.ErrorTypeUnauthorized, "authentication required", "00f7b5cf-94a5-4c10-a8b5-6a2de7d5a0cc")
		return
	}

	var params meetingreq.ListMeetingsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		responses.HandleNewError(c, apperrors.ErrorTypeValidation, "invalid query parameters", "4c6d8dfb-9b3c-44f2-8b13-8f2b55f7f6e0")
		return
	}

	pagination, err := requests.GetPaginationFromQuery(c)
	if err != nil {
		responses.HandleError(c, err, "invalid pagination")
		return
	}

	var status *meeting.Status
	if params.Status != nil {
		s := meeting.Status(*params.Status)
		status = &s
	}

	meetings, err := h.meetings.List(c.Request.Context(), usr.ID, status, pagination)
	if err != nil {
		responses.HandleError(c, err, "failed to list meetings")
		return
	}

	c.JSON(http.StatusOK, meetingres.NewMeetingListResponse(meetings))
}

// UpdateMeetingStatus handles POST /v1/meetings/:meeting_id/status
// @Summary Record a meeting status transition
// @Description Record a status reported by the video platform. The start timestamp is stamped when the meeting turns active, the end timestamp on completion or processing.
// @Tags Meetings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param meeting_id path string true "Meeting public ID"
// @Param request body meetingreq.UpdateMeetingStatusRequest true "New status"
// @Success 200 {object} meetingres.MeetingResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /v1/meetings/{meeting_id}/status [post]
func (h *MeetingHandler) UpdateMeetingStatus(c *gin.Context) {
	usr, ok := middlewares.UserFromContext(c)
	if !ok {
		responses.HandleNewError(c, apperrors.ErrorTypeUnauthorized, "authentication required", "76b8a0ef-0c34-4e1a-9c5c-2e2b3fc6e0d1")
		return
	}

	var req meetingreq.UpdateMeetingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, apperrors.ErrorTypeValidation, "invalid request body", "ef5a2ce7-13c4-4bc8-8d81-0e9c6c248d03")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		responses.HandleNewError(c, apperrors.ErrorTypeValidation, err.Error(), "6f7a3c49-55e2-4c76-bb3a-3be4f1f2c7da")
		return
	}

	updated, err := h.meetings.UpdateStatus(c.Request.Context(), usr.ID, c.Param("meeting_id"), meeting.Status(req.Status))
	if err != nil {
		responses.HandleError(c, err, "failed to update meeting status")
		return
	}

	c.JSON(http.StatusOK, meetingres.NewMeetingResponse(updated))
}
