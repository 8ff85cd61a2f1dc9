package chat

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/yihao03/Aistronaut/config"
	conversationRepo "github.com/yihao03/Aistronaut/database/repository/conversation"
	"github.com/yihao03/Aistronaut/models"
	"github.com/yihao03/Aistronaut/services/assistant"
	"github.com/yihao03/Aistronaut/services/catalog"
	"github.com/yihao03/Aistronaut/services/notification"
	"github.com/yihao03/Aistronaut/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultChatService is the production ChatService. Selection state lives in
// the SessionStore keyed by conversation id; the busy table serializes sends
// so each conversation has at most one gateway call in flight.
type DefaultChatService struct {
	repo      conversationRepo.ConversationRepository
	gateway   assistant.Client
	sessions  SessionStore
	estimator catalog.PriceEstimator
	notifier  notification.Service

	mu   sync.Mutex
	busy map[string]bool

	sleep func(time.Duration)
	now   func() time.Time
}

func NewChatService(
	repo conversationRepo.ConversationRepository,
	gateway assistant.Client,
	sessions SessionStore,
	estimator catalog.PriceEstimator,
	notifier notification.Service,
) *DefaultChatService {
	return &DefaultChatService{
		repo:      repo,
		gateway:   gateway,
		sessions:  sessions,
		estimator: estimator,
		notifier:  notifier,
		busy:      make(map[string]bool),
		sleep:     time.Sleep,
		now:       time.Now,
	}
}

// acquire marks the conversation busy, reporting false when a request is
// already in flight.
func (s *DefaultChatService) acquire(conversationID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy[conversationID] {
		return false
	}
	s.busy[conversationID] = true
	return true
}

func (s *DefaultChatService) release(conversationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.busy, conversationID)
}

// ensureConversation verifies the id exists before any append; appends to an
// unknown id would otherwise be silently swallowed by the store.
func (s *DefaultChatService) ensureConversation(conversationID string) error {
	conv, err := s.repo.Get(conversationID)
	if err != nil {
		return err
	}
	if conv == nil {
		return NewNotFoundError(conversationID)
	}
	return nil
}

func (s *DefaultChatService) newMessage(role, text string, payload *models.MessagePayload) models.Message {
	return models.Message{
		ID:        "msg_" + uuid.New().String(),
		Role:      role,
		Text:      text,
		CreatedAt: s.now(),
		Payload:   payload,
	}
}

// bookingDelay picks the simulated processing time from the configured bounds.
func bookingDelay() time.Duration {
	min := config.AppConfig.BookingDelayMinMs
	max := config.AppConfig.BookingDelayMaxMs
	if max < min {
		max = min
	}
	ms := min
	if span := max - min; span > 0 {
		ms += rand.Intn(span + 1)
	}
	return time.Duration(ms) * time.Millisecond
}

func (s *DefaultChatService) StartConversation(ctx context.Context, identity models.Identity) (*models.Conversation, error) {
	logger := utils.GetLogger()

	if !identity.IsAuthenticated() {
		// No store writes for anonymous visitors; the prompt is transient.
		now := s.now()
		return &models.Conversation{
			Info: models.ConversationInfo{
				Title:         models.DefaultConversationTitle,
				CreatedAt:     now,
				LastMessageAt: now,
				MessageCount:  1,
			},
			Messages: []models.Message{s.newMessage(models.RoleAssistant, authRequiredText, nil)},
		}, nil
	}

	conversationID, err := s.gateway.CreateConversation(ctx, identity.Token)
	if err != nil {
		conversationID = "conv_" + uuid.New().String()
		logger.Warn("gateway unreachable, using local conversation id",
			zap.String("conversationID", conversationID), zap.Error(err))
	}

	if _, err := s.repo.Create(conversationID, ""); err != nil {
		return nil, err
	}
	if err := s.repo.SetCurrent(identity.UserID, conversationID); err != nil {
		logger.Warn("failed to set current conversation",
			zap.String("userID", identity.UserID), zap.Error(err))
	}
	if err := s.sessions.Clear(ctx, conversationID); err != nil {
		logger.Warn("failed to clear session state",
			zap.String("conversationID", conversationID), zap.Error(err))
	}

	if err := s.repo.Append(conversationID, s.newMessage(models.RoleAssistant, welcomeText, nil)); err != nil {
		return nil, err
	}
	return s.repo.Get(conversationID)
}

func (s *DefaultChatService) SendMessage(ctx context.Context, identity models.Identity, conversationID, text string) (*models.Conversation, error) {
	if !identity.IsAuthenticated() {
		return nil, NewAuthError()
	}
	if err := s.ensureConversation(conversationID); err != nil {
		return nil, err
	}

	if !s.acquire(conversationID) {
		return nil, NewBusyError(conversationID)
	}
	defer s.release(conversationID)

	session, err := s.sessions.Get(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if session.BookingInFlight {
		return nil, NewBusyError(conversationID)
	}

	if err := s.repo.Append(conversationID, s.newMessage(models.RoleUser, text, nil)); err != nil {
		return nil, err
	}

	resp, err := s.gateway.Send(ctx, identity.Token, assistant.SendRequest{
		ConversationID: conversationID,
		UserID:         identity.UserID,
		Content:        text,
		ContentType:    0,
	})
	if err != nil {
		utils.GetLogger().Warn("gateway send failed",
			zap.String("conversationID", conversationID),
			zap.String("kind", assistant.ErrKind(err)), zap.Error(err))
		notice := s.newMessage(models.RoleAssistant, errorNoticeText(assistant.ErrKind(err)), nil)
		notice.IsErrorNotice = true
		if err := s.repo.Append(conversationID, notice); err != nil {
			return nil, err
		}
		return s.repo.Get(conversationID)
	}

	reply := resp.Content
	var payload *models.MessagePayload
	if flights := catalog.ParseFlightOptions(resp.FlightObject); len(flights) > 0 {
		country := catalog.DetectCountry(text)
		if trips := catalog.BuildTripOptions(flights, country, s.estimator); len(trips) > 0 {
			payload = models.TripsPayload(trips)
			reply = tripsEnrichedText(resp.Content, trips)
		} else {
			payload = models.FlightsPayload(flights)
		}
	}

	if err := s.repo.Append(conversationID, s.newMessage(models.RoleAssistant, reply, payload)); err != nil {
		return nil, err
	}
	return s.repo.Get(conversationID)
}

func (s *DefaultChatService) SelectFlight(ctx context.Context, identity models.Identity, conversationID string, flight models.FlightOption) (*models.Conversation, error) {
	if !identity.IsAuthenticated() {
		return nil, NewAuthError()
	}
	if err := s.ensureConversation(conversationID); err != nil {
		return nil, err
	}
	if !s.acquire(conversationID) {
		return nil, NewBusyError(conversationID)
	}
	defer s.release(conversationID)

	pick := flightPickText(flight)
	if err := s.repo.Append(conversationID, s.newMessage(models.RoleUser, pick, nil)); err != nil {
		return nil, err
	}

	session, err := s.sessions.Get(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	session.CurrentFlight = &flight
	if err := s.sessions.Set(ctx, conversationID, session); err != nil {
		return nil, err
	}

	reply := flightFallbackText(flight)
	resp, err := s.gateway.Send(ctx, identity.Token, assistant.SendRequest{
		ConversationID: conversationID,
		UserID:         identity.UserID,
		Content:        pick,
		ContentType:    0,
	})
	if err != nil {
		utils.GetLogger().Warn("gateway unreachable on flight pick, using local summary",
			zap.String("conversationID", conversationID), zap.Error(err))
	} else if resp.Content != "" {
		reply = resp.Content
	}

	if err := s.repo.Append(conversationID, s.newMessage(models.RoleAssistant, reply, nil)); err != nil {
		return nil, err
	}
	return s.repo.Get(conversationID)
}

func (s *DefaultChatService) SelectTrip(ctx context.Context, identity models.Identity, conversationID string, trip models.TripOption) (*models.Conversation, error) {
	if !identity.IsAuthenticated() {
		return nil, NewAuthError()
	}
	if err := s.ensureConversation(conversationID); err != nil {
		return nil, err
	}
	if !s.acquire(conversationID) {
		return nil, NewBusyError(conversationID)
	}
	defer s.release(conversationID)

	if err := s.repo.Append(conversationID, s.newMessage(models.RoleUser, tripPickText(trip), nil)); err != nil {
		return nil, err
	}

	session, err := s.sessions.Get(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	session.CurrentTrip = &trip
	session.CurrentAccommodation = nil
	session.CurrentBooking = nil
	if err := s.sessions.Set(ctx, conversationID, session); err != nil {
		return nil, err
	}

	accommodations := catalog.BuildAccommodationOptions(
		trip.Destination,
		trip.FlightInfo.OutboundFlight.ArrivalDate,
		trip.FlightInfo.ReturnFlight.DepartureDate,
		s.estimator,
	)
	msg := s.newMessage(models.RoleAssistant, tripCongratsText(trip), models.AccommodationsPayload(accommodations))
	if err := s.repo.Append(conversationID, msg); err != nil {
		return nil, err
	}
	return s.repo.Get(conversationID)
}

func (s *DefaultChatService) SelectAccommodation(ctx context.Context, identity models.Identity, conversationID string, accom models.AccommodationOption, fallbackTrip *models.TripOption) (*models.Conversation, error) {
	logger := utils.GetLogger()

	if !identity.IsAuthenticated() {
		return nil, NewAuthError()
	}
	if err := s.ensureConversation(conversationID); err != nil {
		return nil, err
	}
	if !s.acquire(conversationID) {
		return nil, NewBusyError(conversationID)
	}
	defer s.release(conversationID)

	if err := s.repo.Append(conversationID, s.newMessage(models.RoleUser, accommodationPickText(accom), nil)); err != nil {
		return nil, err
	}

	session, err := s.sessions.Get(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	trip := session.CurrentTrip
	if trip == nil && fallbackTrip != nil {
		logger.Warn("trip state missing at accommodation pick, using caller fallback",
			zap.String("conversationID", conversationID))
		trip = fallbackTrip
	}

	details, err := catalog.BuildBookingDetails(trip, &accom, s.now())
	if err != nil {
		logger.Error("booking details assembly failed",
			zap.String("conversationID", conversationID), zap.Error(err))
		if err := s.repo.Append(conversationID, s.newMessage(models.RoleAssistant, bookingDegradedText, nil)); err != nil {
			return nil, err
		}
		return s.repo.Get(conversationID)
	}

	session.CurrentTrip = trip
	session.CurrentAccommodation = &accom
	session.CurrentBooking = details
	if err := s.sessions.Set(ctx, conversationID, session); err != nil {
		return nil, err
	}

	msg := s.newMessage(models.RoleAssistant, bookingReviewText(details), models.BookingPayload(details))
	if err := s.repo.Append(conversationID, msg); err != nil {
		return nil, err
	}
	return s.repo.Get(conversationID)
}

func (s *DefaultChatService) ConfirmBooking(ctx context.Context, identity models.Identity, conversationID string) (*models.Conversation, error) {
	logger := utils.GetLogger()

	if !identity.IsAuthenticated() {
		return nil, NewAuthError()
	}
	if err := s.ensureConversation(conversationID); err != nil {
		return nil, err
	}
	if !s.acquire(conversationID) {
		return nil, NewBusyError(conversationID)
	}
	defer s.release(conversationID)

	session, err := s.sessions.Get(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if session.BookingInFlight {
		return nil, NewBusyError(conversationID)
	}

	if session.CurrentTrip == nil || session.CurrentAccommodation == nil || session.CurrentBooking == nil {
		logger.Error("confirm requested without a reviewable booking",
			zap.String("conversationID", conversationID))
		notice := s.newMessage(models.RoleAssistant, bookingFailedText, nil)
		notice.IsErrorNotice = true
		if err := s.repo.Append(conversationID, notice); err != nil {
			return nil, err
		}
		return s.repo.Get(conversationID)
	}

	session.BookingInFlight = true
	if err := s.sessions.Set(ctx, conversationID, session); err != nil {
		return nil, err
	}
	// A confirm, once started, always resolves: the flag must come down on
	// every exit path or the conversation wedges until the session expires.
	defer func() {
		session.BookingInFlight = false
		if err := s.sessions.Set(ctx, conversationID, session); err != nil {
			logger.Warn("failed to clear booking flag",
				zap.String("conversationID", conversationID), zap.Error(err))
		}
	}()

	s.sleep(bookingDelay())

	text := confirmationText(session.CurrentBooking.ID, *session.CurrentTrip,
		*session.CurrentAccommodation, session.CurrentBooking.TotalPrice)
	if err := s.repo.Append(conversationID, s.newMessage(models.RoleAssistant, text, nil)); err != nil {
		logger.Error("failed to record booking confirmation",
			zap.String("conversationID", conversationID), zap.Error(err))
		notice := s.newMessage(models.RoleAssistant, bookingFailedText, nil)
		notice.IsErrorNotice = true
		if err := s.repo.Append(conversationID, notice); err != nil {
			logger.Error("failed to record booking failure notice",
				zap.String("conversationID", conversationID), zap.Error(err))
		}
		return s.repo.Get(conversationID)
	}

	if s.notifier != nil {
		// Best effort; failures are logged inside the notifier.
		_ = s.notifier.Notify(ctx, identity.UserID, "Booking confirmed",
			"Your trip to "+session.CurrentTrip.Destination+" is booked for "+session.CurrentBooking.TotalPrice+".")
	}

	session.CurrentBooking = nil
	return s.repo.Get(conversationID)
}

func (s *DefaultChatService) CancelBooking(ctx context.Context, identity models.Identity, conversationID string) (*models.Conversation, error) {
	if !identity.IsAuthenticated() {
		return nil, NewAuthError()
	}
	if err := s.ensureConversation(conversationID); err != nil {
		return nil, err
	}
	if !s.acquire(conversationID) {
		return nil, NewBusyError(conversationID)
	}
	defer s.release(conversationID)

	session, err := s.sessions.Get(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if session.BookingInFlight {
		return nil, NewBusyError(conversationID)
	}

	// Selections stay in place so the user can re-select.
	if err := s.repo.Append(conversationID, s.newMessage(models.RoleAssistant, cancellationText, nil)); err != nil {
		return nil, err
	}
	return s.repo.Get(conversationID)
}

func (s *DefaultChatService) RetryLastMessage(ctx context.Context, identity models.Identity, conversationID string) (*models.Conversation, error) {
	if !identity.IsAuthenticated() {
		return nil, NewAuthError()
	}
	conv, err := s.repo.Get(conversationID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, NewNotFoundError(conversationID)
	}

	for i := len(conv.Messages) - 1; i >= 0; i-- {
		msg := conv.Messages[i]
		if msg.Role == models.RoleUser && !msg.IsErrorNotice {
			return s.SendMessage(ctx, identity, conversationID, msg.Text)
		}
	}
	return nil, NewNoRetryTargetError(conversationID)
}

func (s *DefaultChatService) GetConversation(ctx context.Context, conversationID string) (*models.Conversation, error) {
	conv, err := s.repo.Get(conversationID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, NewNotFoundError(conversationID)
	}
	return conv, nil
}

func (s *DefaultChatService) ListConversations(ctx context.Context) ([]models.ConversationInfo, error) {
	return s.repo.List()
}

func (s *DefaultChatService) DeleteConversation(ctx context.Context, identity models.Identity, conversationID string) error {
	if !identity.IsAuthenticated() {
		return NewAuthError()
	}
	if err := s.repo.Delete(conversationID); err != nil {
		return err
	}
	if err := s.sessions.Clear(ctx, conversationID); err != nil {
		utils.GetLogger().Warn("failed to clear session on delete",
			zap.String("conversationID", conversationID), zap.Error(err))
	}
	if current, err := s.repo.GetCurrent(identity.UserID); err == nil && current == conversationID {
		if err := s.repo.ClearCurrent(identity.UserID); err != nil {
			utils.GetLogger().Warn("failed to clear current pointer",
				zap.String("userID", identity.UserID), zap.Error(err))
		}
	}
	return nil
}

func (s *DefaultChatService) SwitchConversation(ctx context.Context, identity models.Identity, conversationID string) (*models.Conversation, error) {
	if !identity.IsAuthenticated() {
		return nil, NewAuthError()
	}
	conv, err := s.repo.Get(conversationID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, NewNotFoundError(conversationID)
	}
	if err := s.repo.SetCurrent(identity.UserID, conversationID); err != nil {
		return nil, err
	}
	return conv, nil
}

func (s *DefaultChatService) CurrentConversation(ctx context.Context, identity models.Identity) (*models.Conversation, error) {
	if !identity.IsAuthenticated() {
		return nil, NewAuthError()
	}
	current, err := s.repo.GetCurrent(identity.UserID)
	if err != nil {
		return nil, err
	}
	if current == "" {
		return nil, nil
	}
	return s.repo.Get(current)
}
