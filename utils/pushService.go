package utils

import (
	"eslapi/config"
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"
)

// SendStreakPush notifies a device that it reached a streak milestone.
// Expo accepts the token in the request body, no per-device auth needed.
func SendStreakPush(pushToken string, streak int) {
	if pushToken == "" {
		return
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"to":    pushToken,
			"title": fmt.Sprintf("%d day streak!", streak),
			"body":  fmt.Sprintf("You have practiced %d days in a row. Keep it going!", streak),
			"sound": "default",
		}).
		Post(config.AppConfig.ExpoPushURL)

	if err != nil {
		log.Printf("Error sending streak push: %v", err)
		return
	}
	if resp.StatusCode() != 200 {
		log.Printf("Streak push rejected: %s", resp.String())
	}
}
