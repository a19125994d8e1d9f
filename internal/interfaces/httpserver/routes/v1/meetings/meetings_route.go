package meetings

import (
	"github.com/gin-gonic/gin"

	"agentsync/server/internal/interfaces/httpserver/handlers/meetinghandler"
)

type MeetingsRoute struct {
	handler *meetinghandler.MeetingHandler
}

func NewMeetingsRoute(handler *meetinghandler.MeetingHandler) *MeetingsRoute {
	return &MeetingsRoute{handler: handler}
}

func (route *MeetingsRoute) RegisterRouter(router gin.IRouter) {
	meetings := router.Group("/meetings")
	meetings.POST("", route.handler.CreateMeeting)
	meetings.GET("", route.handler.ListMeetings)
	meetings.POST("/:meeting_id/status", route.handler.UpdateMeetingStatus)
}
