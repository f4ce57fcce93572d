package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/diegoclair/session-planner-bot/internal/domain/entity"
)

func Test_newReminderScheduler(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	clock := &fakeClock{now: amsterdam(t, 2023, time.July, 30, 12, 12, 12)}
	s := newReminderScheduler(clock, m.mockChatClient, m.mockDataManager, testChannelID, zap.NewNop())

	require.NotNil(t, s)
	assert.Equal(t, clock, s.clock)
	assert.Equal(t, m.mockChatClient, s.chat)
	assert.Equal(t, m.mockDataManager, s.dm)
	assert.Equal(t, testChannelID, s.channelID)
	assert.NotNil(t, s.sleep)
}

func Test_reminderScheduler_Run(t *testing.T) {
	errSend := errors.New("channel_not_found")
	errJournal := errors.New("database is locked")

	sunday := amsterdam(t, 2023, time.July, 30, 12, 12, 12)
	firstReminder := amsterdam(t, 2023, time.August, 1, 10, 0, 0)
	secondReminder := amsterdam(t, 2023, time.August, 8, 10, 0, 0)

	tests := []struct {
		name      string
		now       time.Time
		sleepErr  error
		buildMock func(t *testing.T, m allMocks)
		wantErr   error
		wantWaits []time.Duration
	}{
		{
			name: "Should post the reminder on Tuesday 10:00 and re-arm for the next week",
			now:  sunday,
			buildMock: func(t *testing.T, m allMocks) {
				gomock.InOrder(
					m.mockChatClient.EXPECT().
						SendMessage(gomock.Any(), testChannelID, gomock.Any()).
						DoAndReturn(func(_ context.Context, _ entity.ChannelID, text string) (entity.MessageRef, error) {
							assert.Contains(t, strings.ToLower(text), "donderdag 17 augustus")
							assert.Contains(t, text, "De volgende datum voor een potentiele sessie is")
							return entity.MessageRef{ChannelID: testChannelID, Timestamp: "1690876800.000100"}, nil
						}).Times(1),

					m.mockReminderRepo.EXPECT().
						Create(gomock.Any()).
						DoAndReturn(func(r *entity.SentReminder) error {
							_, err := uuid.Parse(r.RunID)
							assert.NoError(t, err)
							assert.Equal(t, testChannelID, r.ChannelID)
							assert.Equal(t, "1690876800.000100", r.MessageTS)
							assert.True(t, amsterdam(t, 2023, time.August, 17, 19, 0, 0).Equal(r.SessionDate))
							assert.True(t, firstReminder.Equal(r.SentAt))
							return nil
						}).Times(1),

					m.mockChatClient.EXPECT().
						SendMessage(gomock.Any(), testChannelID, gomock.Any()).
						Return(entity.MessageRef{}, errSend).Times(1),
				)
			},
			wantErr:   errSend,
			wantWaits: []time.Duration{firstReminder.Sub(sunday), secondReminder.Sub(firstReminder)},
		},
		{
			name: "Should keep scheduling when the journal write fails",
			now:  sunday,
			buildMock: func(t *testing.T, m allMocks) {
				gomock.InOrder(
					m.mockChatClient.EXPECT().
						SendMessage(gomock.Any(), testChannelID, gomock.Any()).
						Return(entity.MessageRef{ChannelID: testChannelID, Timestamp: "1690876800.000100"}, nil).Times(1),

					m.mockReminderRepo.EXPECT().
						Create(gomock.Any()).
						Return(errJournal).Times(1),

					m.mockChatClient.EXPECT().
						SendMessage(gomock.Any(), testChannelID, gomock.Any()).
						Return(entity.MessageRef{}, errSend).Times(1),
				)
			},
			wantErr:   errSend,
			wantWaits: []time.Duration{firstReminder.Sub(sunday), 7 * 24 * time.Hour},
		},
		{
			name: "Should fail on the first send without retrying",
			now:  amsterdam(t, 2023, time.August, 1, 9, 59, 0),
			buildMock: func(t *testing.T, m allMocks) {
				m.mockChatClient.EXPECT().
					SendMessage(gomock.Any(), testChannelID, gomock.Any()).
					Return(entity.MessageRef{}, errSend).Times(1)
			},
			wantErr:   errSend,
			wantWaits: []time.Duration{7*24*time.Hour + time.Minute},
		},
		{
			name:      "Should stop without sending when the context is canceled",
			now:       sunday,
			sleepErr:  context.Canceled,
			wantErr:   context.Canceled,
			wantWaits: []time.Duration{firstReminder.Sub(sunday)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			if tt.buildMock != nil {
				tt.buildMock(t, m)
			}

			clock := &fakeClock{now: tt.now}
			s := newReminderScheduler(clock, m.mockChatClient, m.mockDataManager, testChannelID, zap.NewNop())

			var waits []time.Duration
			s.sleep = func(ctx context.Context, d time.Duration) error {
				waits = append(waits, d)
				if tt.sleepErr != nil {
					return tt.sleepErr
				}
				clock.Advance(d)
				return nil
			}

			err := s.Run(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantWaits, waits)
		})
	}
}

func Test_sleep(t *testing.T) {
	t.Run("Should return after the duration", func(t *testing.T) {
		start := time.Now()
		err := sleep(context.Background(), 10*time.Millisecond)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	})

	t.Run("Should return early when the context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := sleep(ctx, time.Hour)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
