package worker

import (
	"github.com/spec-kit/support-ticket-api/internal/service"
)

// StartActivityLogger registers the activity log handlers.
func StartActivityLogger(activityService *service.ActivityService) {
	if activityService == nil {
		return
	}
	activityService.RegisterHandlers()
}
