package utils

import (
	"context"

	"github.com/yihao03/Aistronaut/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

var messagingClient *messaging.Client

// FirebaseInit initializes the Firebase app used for push notifications.
// Missing credentials are tolerated; pushes become no-ops.
func FirebaseInit() {
	logger := GetLogger()
	credFile := config.AppConfig.FirebaseCredentialsFile
	if credFile == "" {
		logger.Info("Firebase credentials not configured, push notifications disabled")
		return
	}

	app, err := firebase.NewApp(context.Background(), nil, option.WithCredentialsFile(credFile))
	if err != nil {
		logger.Warn("Failed to initialize Firebase app", zap.Error(err))
		return
	}

	client, err := app.Messaging(context.Background())
	if err != nil {
		logger.Warn("Failed to initialize Firebase messaging client", zap.Error(err))
		return
	}
	messagingClient = client
}

// GetMessagingClient returns the FCM client, or nil when pushes are disabled.
func GetMessagingClient() *messaging.Client {
	return messagingClient
}
