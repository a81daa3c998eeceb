package utils

import (
	"eslapi/config"
	"eslapi/database"
	"eslapi/models"
	"eslapi/models/exercise"
	"eslapi/stats"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[DIGEST-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// sendWeeklyDigests computes each active user's summary and mails it out
func sendWeeklyDigests() {
	db := database.Database.Db
	now := time.Now().UTC()

	var exercises []exercise.Exercise
	if err := db.Where("is_deleted = ? AND is_published = ?", false, true).Find(&exercises).Error; err != nil {
		logScheduler("Error fetching exercises: " + err.Error())
		return
	}
	var categories []exercise.Category
	if err := db.Where("is_deleted = ?", false).Order("order_index asc, id asc").Find(&categories).Error; err != nil {
		logScheduler("Error fetching categories: " + err.Error())
		return
	}

	var users []models.User
	if err := db.Where("is_deleted = ?", false).Find(&users).Error; err != nil {
		logScheduler("Error fetching users: " + err.Error())
		return
	}

	sent := 0
	for _, user := range users {
		if user.Email == "" {
			continue
		}

		var progress []exercise.ProgressRecord
		if err := db.Where("user_id = ?", user.ID).Find(&progress).Error; err != nil {
			logScheduler("Error fetching progress for user: " + err.Error())
			continue
		}
		// nothing to report for users who never started
		if len(progress) == 0 {
			continue
		}

		summary := stats.ComputeUserStats(progress, exercises, categories, now)
		SendWeeklyDigestEmail(user.Email, user.Name, summary.CompletedExercises, summary.TotalExercises, summary.AverageScore, summary.Streak)
		sent++
	}

	logScheduler(fmt.Sprintf("Weekly digests queued for %d users", sent))
}

// InitializeDigestScheduler starts the weekly digest cron
func InitializeDigestScheduler() *cron.Cron {
	logScheduler("Initializing digest scheduler...")

	c := cron.New()

	if _, err := c.AddFunc(config.AppConfig.DigestCron, sendWeeklyDigests); err != nil {
		logScheduler("Invalid digest cron expression: " + err.Error())
		return c
	}

	c.Start()

	logScheduler("Digest scheduler initialized successfully")
	return c
}
