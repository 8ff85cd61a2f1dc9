package notification

import (
	"context"

	userRepo "github.com/yihao03/Aistronaut/database/repository/user"
	"github.com/yihao03/Aistronaut/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// FCMService pushes via Firebase Cloud Messaging using the device token
// stored on the user record.
type FCMService struct {
	Users  userRepo.UserRepository
	Client *messaging.Client
}

func NewFCMService(users userRepo.UserRepository, client *messaging.Client) *FCMService {
	return &FCMService{Users: users, Client: client}
}

func (s *FCMService) Notify(ctx context.Context, userID, title, body string) error {
	logger := utils.GetLogger()
	if s.Client == nil {
		logger.Debug("fcm client not configured, skipping push", zap.String("userID", userID))
		return nil
	}

	user, err := s.Users.GetByID(userID)
	if err != nil || user == nil || user.FCMToken == "" {
		logger.Debug("no fcm token for user, skipping push", zap.String("userID", userID))
		return nil
	}

	msg := &messaging.Message{
		Token: user.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}
	if _, err := s.Client.Send(ctx, msg); err != nil {
		logger.Warn("fcm push failed", zap.String("userID", userID), zap.Error(err))
		return err
	}
	return nil
}

// NoopService is used in tests and when push is disabled.
type NoopService struct{}

func (NoopService) Notify(ctx context.Context, userID, title, body string) error {
	return nil
}
