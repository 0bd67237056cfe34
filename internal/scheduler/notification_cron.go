package cron

import (
	"context"

	"github.com/rajwantprajapati/devTinder/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// StartNotificationCronJobs schedules the hourly purge of expired
// notifications.
func StartNotificationCronJobs(notificationService *services.NotificationService) {
	c := cron.New()

	c.AddFunc("@hourly", func() {
		if err := notificationService.PurgeExpired(context.Background()); err != nil {
			logrus.WithError(err).Error("PurgeExpired failed")
		}
	})

	c.Start()
}
