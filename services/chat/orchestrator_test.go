package chat

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	conversationRepo "github.com/yihao03/Aistronaut/database/repository/conversation"
	"github.com/yihao03/Aistronaut/models"
	"github.com/yihao03/Aistronaut/services/assistant"
	"github.com/yihao03/Aistronaut/services/catalog"
	"github.com/yihao03/Aistronaut/services/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	mu        sync.Mutex
	createID  string
	createErr error
	sendFn    func(req assistant.SendRequest) (*assistant.Response, error)
	sends     []assistant.SendRequest
}

func (g *fakeGateway) CreateConversation(ctx context.Context, token string) (string, error) {
	if g.createErr != nil {
		return "", g.createErr
	}
	if g.createID == "" {
		return "conv_fake", nil
	}
	return g.createID, nil
}

func (g *fakeGateway) Send(ctx context.Context, token string, req assistant.SendRequest) (*assistant.Response, error) {
	g.mu.Lock()
	g.sends = append(g.sends, req)
	g.mu.Unlock()
	if g.sendFn != nil {
		return g.sendFn(req)
	}
	return &assistant.Response{ConversationID: req.ConversationID, Content: "Noted!"}, nil
}

func (g *fakeGateway) sentContents() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]string, len(g.sends))
	for i, s := range g.sends {
		out[i] = s.Content
	}
	return out
}

func testIdentity() models.Identity {
	return models.Identity{UserID: "user-1", Username: "amara", Token: "tok"}
}

func newTestService(gateway *fakeGateway) (*DefaultChatService, conversationRepo.ConversationRepository) {
	repo := conversationRepo.NewMemoryConversationRepo()
	svc := NewChatService(
		repo,
		gateway,
		NewMemorySessionStore(),
		catalog.FixedEstimator{
			Nightly:    200,
			Activities: 150,
			TierRates: map[string]float64{
				catalog.TierLuxury:   400,
				catalog.TierBoutique: 220,
				catalog.TierEconomy:  90,
			},
		},
		notification.NoopService{},
	)
	svc.sleep = func(d time.Duration) {}
	return svc, repo
}

func flightBlob(n int) string {
	blob := "["
	for i := 0; i < n; i++ {
		if i > 0 {
			blob += ","
		}
		blob += fmt.Sprintf(`{
			"selected_flight": {
				"airline": "Thai Airways",
				"outbound_flight": {
					"flight_number": "TG%d", "departure_city": "Singapore", "arrival_city": "Bangkok",
					"departure_date": "2025-03-01", "departure_time": "08:00",
					"arrival_date": "2025-03-01", "arrival_time": "09:30",
					"duration_hours": 2.5, "stops": []
				},
				"return_flight": {
					"flight_number": "TG%d", "departure_city": "Bangkok", "arrival_city": "Singapore",
					"departure_date": "2025-03-06", "departure_time": "18:00",
					"arrival_date": "2025-03-06", "arrival_time": "21:30",
					"duration_hours": 2.5, "stops": []
				},
				"price": %d, "currency": "USD", "reason": "Good fit"
			},
			"mode": "chill"
		}`, 100+i, 200+i, 400+50*i)
	}
	return blob + "]"
}

func TestStartConversationUnauthenticated(t *testing.T) {
	gateway := &fakeGateway{}
	svc, repo := newTestService(gateway)

	conv, err := svc.StartConversation(context.Background(), models.Identity{})
	require.NoError(t, err)
	require.Len(t, conv.Messages, 1)
	assert.Equal(t, models.RoleAssistant, conv.Messages[0].Role)
	assert.Equal(t, authRequiredText, conv.Messages[0].Text)
	assert.Empty(t, conv.Info.ID, "nothing is persisted for anonymous visitors")

	infos, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestStartConversationFallsBackToLocalID(t *testing.T) {
	gateway := &fakeGateway{createErr: &assistant.GatewayError{Kind: assistant.ErrKindNetwork, Message: "down"}}
	svc, _ := newTestService(gateway)

	conv, err := svc.StartConversation(context.Background(), testIdentity())
	require.NoError(t, err)
	assert.Contains(t, conv.Info.ID, "conv_")
	require.Len(t, conv.Messages, 1)
	assert.Equal(t, welcomeText, conv.Messages[0].Text)
}

func TestSendMessageUnauthenticated(t *testing.T) {
	svc, _ := newTestService(&fakeGateway{})
	_, err := svc.SendMessage(context.Background(), models.Identity{}, "conv_fake", "hello")
	require.Error(t, err)
	ce, ok := err.(*ChatError)
	require.True(t, ok)
	assert.Equal(t, "notAuthenticated", ce.Code)
}

func TestSendMessageGatewayFailureBecomesErrorNotice(t *testing.T) {
	gateway := &fakeGateway{
		sendFn: func(req assistant.SendRequest) (*assistant.Response, error) {
			return nil, &assistant.GatewayError{Kind: assistant.ErrKindNetwork, Message: "unreachable"}
		},
	}
	svc, _ := newTestService(gateway)
	identity := testIdentity()

	conv, err := svc.StartConversation(context.Background(), identity)
	require.NoError(t, err)

	conv, err = svc.SendMessage(context.Background(), identity, conv.Info.ID, "Show me Thailand")
	require.NoError(t, err, "gateway failures must not escape the orchestrator")

	require.Len(t, conv.Messages, 3, "welcome, user text, error notice")
	last := conv.Messages[2]
	assert.Equal(t, models.RoleAssistant, last.Role)
	assert.True(t, last.IsErrorNotice)
	assert.Equal(t, networkErrorText, last.Text)
	assert.Nil(t, last.Payload)
}

func TestRetryReplaysLastUserMessage(t *testing.T) {
	fail := true
	gateway := &fakeGateway{
		sendFn: func(req assistant.SendRequest) (*assistant.Response, error) {
			if fail {
				return nil, &assistant.GatewayError{Kind: assistant.ErrKindProtocol, Message: "HTTP 502"}
			}
			return &assistant.Response{Content: "Back online."}, nil
		},
	}
	svc, _ := newTestService(gateway)
	identity := testIdentity()

	conv, err := svc.StartConversation(context.Background(), identity)
	require.NoError(t, err)
	id := conv.Info.ID

	_, err = svc.SendMessage(context.Background(), identity, id, "Show me Thailand")
	require.NoError(t, err)

	fail = false
	conv, err = svc.RetryLastMessage(context.Background(), identity, id)
	require.NoError(t, err)

	assert.Equal(t, []string{"Show me Thailand", "Show me Thailand"}, gateway.sentContents())
	last := conv.Messages[len(conv.Messages)-1]
	assert.Equal(t, "Back online.", last.Text)
	assert.False(t, last.IsErrorNotice)
}

func TestRetryWithoutUserMessage(t *testing.T) {
	svc, _ := newTestService(&fakeGateway{})
	identity := testIdentity()

	conv, err := svc.StartConversation(context.Background(), identity)
	require.NoError(t, err)

	_, err = svc.RetryLastMessage(context.Background(), identity, conv.Info.ID)
	require.Error(t, err)
	ce, ok := err.(*ChatError)
	require.True(t, ok)
	assert.Equal(t, "noRetryTarget", ce.Code)
}

func TestAtMostOneInFlightSend(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	gateway := &fakeGateway{
		sendFn: func(req assistant.SendRequest) (*assistant.Response, error) {
			close(entered)
			<-release
			return &assistant.Response{Content: "done"}, nil
		},
	}
	svc, repo := newTestService(gateway)
	identity := testIdentity()

	conv, err := svc.StartConversation(context.Background(), identity)
	require.NoError(t, err)
	id := conv.Info.ID

	done := make(chan error, 1)
	go func() {
		_, err := svc.SendMessage(context.Background(), identity, id, "first")
		done <- err
	}()
	<-entered

	_, err = svc.SendMessage(context.Background(), identity, id, "second")
	require.Error(t, err)
	assert.True(t, IsBusy(err))

	close(release)
	require.NoError(t, <-done)

	final, err := repo.Get(id)
	require.NoError(t, err)
	// welcome + first user + assistant reply; the refused send left no trace.
	require.Len(t, final.Messages, 3)
	assert.Equal(t, "first", final.Messages[1].Text)
}

func TestSelectFlightFallsBackLocally(t *testing.T) {
	gateway := &fakeGateway{
		sendFn: func(req assistant.SendRequest) (*assistant.Response, error) {
			return nil, &assistant.GatewayError{Kind: assistant.ErrKindNetwork, Message: "down"}
		},
	}
	svc, _ := newTestService(gateway)
	identity := testIdentity()

	conv, err := svc.StartConversation(context.Background(), identity)
	require.NoError(t, err)
	id := conv.Info.ID

	flight := catalog.ParseFlightOptions(flightBlob(1))[0]
	conv, err = svc.SelectFlight(context.Background(), identity, id, flight)
	require.NoError(t, err)

	last := conv.Messages[len(conv.Messages)-1]
	assert.Equal(t, models.RoleAssistant, last.Role)
	assert.False(t, last.IsErrorNotice)
	assert.Contains(t, last.Text, "Thai Airways")
	assert.Contains(t, last.Text, "2025-03-01")

	session, err := svc.sessions.Get(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, session.CurrentFlight)
	assert.Equal(t, flight.ID, session.CurrentFlight.ID)
}

func TestConfirmWithoutBookingIsAFriendlyError(t *testing.T) {
	svc, _ := newTestService(&fakeGateway{})
	identity := testIdentity()

	conv, err := svc.StartConversation(context.Background(), identity)
	require.NoError(t, err)

	conv, err = svc.ConfirmBooking(context.Background(), identity, conv.Info.ID)
	require.NoError(t, err)

	last := conv.Messages[len(conv.Messages)-1]
	assert.True(t, last.IsErrorNotice)
	assert.Equal(t, bookingFailedText, last.Text)
}

func TestEndToEndThailandScenario(t *testing.T) {
	gateway := &fakeGateway{
		sendFn: func(req assistant.SendRequest) (*assistant.Response, error) {
			return &assistant.Response{
				ConversationID: req.ConversationID,
				Content:        "I found some great flights to Bangkok!",
				FlightObject:   flightBlob(3),
			}, nil
		},
	}
	svc, _ := newTestService(gateway)
	identity := testIdentity()
	ctx := context.Background()

	conv, err := svc.StartConversation(ctx, identity)
	require.NoError(t, err)
	id := conv.Info.ID

	// Free text with country intent yields Thailand-only trip options.
	conv, err = svc.SendMessage(ctx, identity, id, "Show me Thailand")
	require.NoError(t, err)
	require.Len(t, conv.Messages, 3)

	reply := conv.Messages[2]
	require.NotNil(t, reply.Payload)
	require.Equal(t, models.PayloadTrips, reply.Payload.Kind)
	trips := reply.Payload.Trips
	require.NotEmpty(t, trips)
	assert.LessOrEqual(t, len(trips), 3)
	for _, trip := range trips {
		assert.Equal(t, "Thailand", trip.Country)
	}

	// Picking a trip offers exactly three stays for its date range.
	trip := trips[0]
	conv, err = svc.SelectTrip(ctx, identity, id, trip)
	require.NoError(t, err)

	offer := conv.Messages[len(conv.Messages)-1]
	require.NotNil(t, offer.Payload)
	require.Equal(t, models.PayloadAccommodations, offer.Payload.Kind)
	accoms := offer.Payload.Accommodations
	require.Len(t, accoms, 3)
	wantNights := catalog.Nights(trip.FlightInfo.OutboundFlight.ArrivalDate, trip.FlightInfo.ReturnFlight.DepartureDate)
	for _, accom := range accoms {
		assert.Equal(t, wantNights, accom.Nights)
	}

	// Picking a stay produces the booking document with additive pricing.
	accom := accoms[0]
	conv, err = svc.SelectAccommodation(ctx, identity, id, accom, nil)
	require.NoError(t, err)

	review := conv.Messages[len(conv.Messages)-1]
	require.NotNil(t, review.Payload)
	require.Equal(t, models.PayloadBooking, review.Payload.Kind)
	details := review.Payload.Booking
	require.NotNil(t, details)

	price := trip.FlightInfo.Price
	want := price*0.6 + price*0.4 + accom.PricePerNight*float64(wantNights) + 150
	assert.InDelta(t, want, details.TotalAmount, 0.001)

	// Confirming closes the booking and echoes its reference and total.
	conv, err = svc.ConfirmBooking(ctx, identity, id)
	require.NoError(t, err)

	confirmation := conv.Messages[len(conv.Messages)-1]
	assert.False(t, confirmation.IsErrorNotice)
	assert.Contains(t, confirmation.Text, details.ID)
	assert.Contains(t, confirmation.Text, details.TotalPrice)
	assert.Contains(t, confirmation.Text, trip.Destination)

	session, err := svc.sessions.Get(ctx, id)
	require.NoError(t, err)
	assert.False(t, session.BookingInFlight)
}

func TestCancelBookingKeepsSelections(t *testing.T) {
	gateway := &fakeGateway{
		sendFn: func(req assistant.SendRequest) (*assistant.Response, error) {
			return &assistant.Response{Content: "flights!", FlightObject: flightBlob(1)}, nil
		},
	}
	svc, _ := newTestService(gateway)
	identity := testIdentity()
	ctx := context.Background()

	conv, err := svc.StartConversation(ctx, identity)
	require.NoError(t, err)
	id := conv.Info.ID

	conv, err = svc.SendMessage(ctx, identity, id, "Show me Thailand")
	require.NoError(t, err)
	trips := conv.Messages[2].Payload.Trips
	require.NotEmpty(t, trips)

	_, err = svc.SelectTrip(ctx, identity, id, trips[0])
	require.NoError(t, err)

	conv, err = svc.CancelBooking(ctx, identity, id)
	require.NoError(t, err)
	assert.Equal(t, cancellationText, conv.Messages[len(conv.Messages)-1].Text)

	session, err := svc.sessions.Get(ctx, id)
	require.NoError(t, err)
	assert.NotNil(t, session.CurrentTrip, "cancel must not clear selections")
}

func TestSelectAccommodationUsesFallbackTrip(t *testing.T) {
	svc, _ := newTestService(&fakeGateway{})
	identity := testIdentity()
	ctx := context.Background()

	conv, err := svc.StartConversation(ctx, identity)
	require.NoError(t, err)
	id := conv.Info.ID

	flight := catalog.ParseFlightOptions(flightBlob(1))[0]
	trips := catalog.BuildTripOptions([]models.FlightOption{flight}, "Thailand", catalog.FixedEstimator{Nightly: 200, Activities: 150})
	require.NotEmpty(t, trips)
	trip := trips[0]

	accom := models.AccommodationOption{
		ID:            "accom_test",
		Name:          "Bangkok City Hotel",
		PricePerNight: 90,
	}

	// No trip was ever selected in session state; the caller's copy rescues it.
	conv, err = svc.SelectAccommodation(ctx, identity, id, accom, &trip)
	require.NoError(t, err)

	review := conv.Messages[len(conv.Messages)-1]
	require.NotNil(t, review.Payload)
	assert.Equal(t, models.PayloadBooking, review.Payload.Kind)
}

// flakyAppendRepo fails the next n Append calls, then behaves normally.
type flakyAppendRepo struct {
	conversationRepo.ConversationRepository
	failures int
}

func (r *flakyAppendRepo) Append(id string, msg models.Message) error {
	if r.failures > 0 {
		r.failures--
		return fmt.Errorf("write timed out")
	}
	return r.ConversationRepository.Append(id, msg)
}

func TestConfirmBookingFailureStillReleasesConversation(t *testing.T) {
	gateway := &fakeGateway{
		sendFn: func(req assistant.SendRequest) (*assistant.Response, error) {
			return &assistant.Response{Content: "flights!", FlightObject: flightBlob(1)}, nil
		},
	}
	svc, repo := newTestService(gateway)
	flaky := &flakyAppendRepo{ConversationRepository: repo}
	svc.repo = flaky
	identity := testIdentity()
	ctx := context.Background()

	conv, err := svc.StartConversation(ctx, identity)
	require.NoError(t, err)
	id := conv.Info.ID

	conv, err = svc.SendMessage(ctx, identity, id, "Show me Thailand")
	require.NoError(t, err)
	trips := conv.Messages[2].Payload.Trips
	require.NotEmpty(t, trips)

	conv, err = svc.SelectTrip(ctx, identity, id, trips[0])
	require.NoError(t, err)
	accoms := conv.Messages[len(conv.Messages)-1].Payload.Accommodations
	require.Len(t, accoms, 3)

	_, err = svc.SelectAccommodation(ctx, identity, id, accoms[0], nil)
	require.NoError(t, err)

	// The confirmation write fails once; the user sees a notice, not an error.
	flaky.failures = 1
	conv, err = svc.ConfirmBooking(ctx, identity, id)
	require.NoError(t, err)

	last := conv.Messages[len(conv.Messages)-1]
	assert.True(t, last.IsErrorNotice)
	assert.Equal(t, bookingFailedText, last.Text)

	session, err := svc.sessions.Get(ctx, id)
	require.NoError(t, err)
	assert.False(t, session.BookingInFlight, "a failed confirm must not leave the conversation wedged")
	require.NotNil(t, session.CurrentBooking, "the reviewed booking survives for another attempt")

	// The conversation keeps accepting input afterwards.
	_, err = svc.SendMessage(ctx, identity, id, "Let's try again")
	require.NoError(t, err)
}

func TestOperationsRejectUnknownConversation(t *testing.T) {
	svc, _ := newTestService(&fakeGateway{})
	identity := testIdentity()
	ctx := context.Background()
	flight := catalog.ParseFlightOptions(flightBlob(1))[0]

	ops := map[string]func() error{
		"send": func() error {
			_, err := svc.SendMessage(ctx, identity, "conv_ghost", "hello")
			return err
		},
		"selectFlight": func() error {
			_, err := svc.SelectFlight(ctx, identity, "conv_ghost", flight)
			return err
		},
		"selectTrip": func() error {
			_, err := svc.SelectTrip(ctx, identity, "conv_ghost", models.TripOption{})
			return err
		},
		"selectAccommodation": func() error {
			_, err := svc.SelectAccommodation(ctx, identity, "conv_ghost", models.AccommodationOption{}, nil)
			return err
		},
		"confirm": func() error {
			_, err := svc.ConfirmBooking(ctx, identity, "conv_ghost")
			return err
		},
		"cancel": func() error {
			_, err := svc.CancelBooking(ctx, identity, "conv_ghost")
			return err
		},
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			err := op()
			require.Error(t, err)
			ce, ok := err.(*ChatError)
			require.True(t, ok)
			assert.Equal(t, "conversationNotFound", ce.Code)
		})
	}
}

func TestCancelBookingRefusedWhileConfirmInFlight(t *testing.T) {
	svc, _ := newTestService(&fakeGateway{})
	identity := testIdentity()
	ctx := context.Background()

	conv, err := svc.StartConversation(ctx, identity)
	require.NoError(t, err)
	id := conv.Info.ID

	session, err := svc.sessions.Get(ctx, id)
	require.NoError(t, err)
	session.BookingInFlight = true
	require.NoError(t, svc.sessions.Set(ctx, id, session))

	_, err = svc.CancelBooking(ctx, identity, id)
	require.Error(t, err)
	assert.True(t, IsBusy(err))
}

func TestSelectAccommodationWithoutAnyTripDegrades(t *testing.T) {
	svc, _ := newTestService(&fakeGateway{})
	identity := testIdentity()
	ctx := context.Background()

	conv, err := svc.StartConversation(ctx, identity)
	require.NoError(t, err)

	accom := models.AccommodationOption{ID: "accom_test", PricePerNight: 90}
	conv, err = svc.SelectAccommodation(ctx, identity, conv.Info.ID, accom, nil)
	require.NoError(t, err, "assembly faults must not escape")

	last := conv.Messages[len(conv.Messages)-1]
	assert.Equal(t, bookingDegradedText, last.Text)
	assert.Nil(t, last.Payload)
}
