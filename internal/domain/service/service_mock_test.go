package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/diegoclair/session-planner-bot/internal/domain/entity"
	"github.com/diegoclair/session-planner-bot/internal/domain/occurrence"
	"github.com/diegoclair/session-planner-bot/mocks"
)

const (
	testChannelID = entity.ChannelID("C123456789")
	testSelfID    = entity.Identity("UBOT00001")
	testOwnerID   = entity.Identity("UOWNER001")
	testPingURL   = "https://planner.example.com/health"
)

type allMocks struct {
	mockDataManager  *mocks.MockDataManager
	mockReminderRepo *mocks.MockReminderRepo
	mockReactionRepo *mocks.MockReactionRepo
	mockChatClient   *mocks.MockChatClient
	mockPinger       *mocks.MockPinger
	mockTaskRunner   *mocks.MockTaskRunner
}

// fakeClock only moves when a test advances it
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func amsterdam(t *testing.T, y int, m time.Month, d, hh, mm, ss int) time.Time {
	t.Helper()

	loc, err := occurrence.ReferenceLocation()
	require.NoError(t, err)

	return time.Date(y, m, d, hh, mm, ss, 0, loc)
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	reminderRepo := mocks.NewMockReminderRepo(ctrl)
	dm.EXPECT().Reminder().Return(reminderRepo).AnyTimes()

	reactionRepo := mocks.NewMockReactionRepo(ctrl)
	dm.EXPECT().Reaction().Return(reactionRepo).AnyTimes()

	m = allMocks{
		mockDataManager:  dm,
		mockReminderRepo: reminderRepo,
		mockReactionRepo: reactionRepo,
		mockChatClient:   mocks.NewMockChatClient(ctrl),
		mockPinger:       mocks.NewMockPinger(ctrl),
		mockTaskRunner:   mocks.NewMockTaskRunner(ctrl),
	}

	return
}

func newTestInstance(t *testing.T, m allMocks, now time.Time, selfPingURL string) *Instance {
	t.Helper()

	instance := NewInstance(Deps{
		Clock:       &fakeClock{now: now},
		Chat:        m.mockChatClient,
		DataManager: m.mockDataManager,
		Pinger:      m.mockPinger,
		Runner:      m.mockTaskRunner,
		Logger:      zap.NewNop(),
		ChannelID:   testChannelID,
		SelfPingURL: selfPingURL,
	})
	require.NotNil(t, instance)

	return instance
}
