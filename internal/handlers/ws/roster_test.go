package ws_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/fight-tracker/internal/changefeed"
	"github.com/KirkDiggler/fight-tracker/internal/entities"
	"github.com/KirkDiggler/fight-tracker/internal/errors"
	"github.com/KirkDiggler/fight-tracker/internal/handlers/ws"
	"github.com/KirkDiggler/fight-tracker/internal/orchestrators/combat"
	"github.com/KirkDiggler/fight-tracker/internal/testutils"
)

const testFightID = "fight-1"

type fakeLister struct {
	mu      sync.Mutex
	roster  []*entities.Participant
	err     error
	viewers []string
}

func (f *fakeLister) ListParticipants(_ context.Context, input *combat.ListParticipantsInput) (*combat.ListParticipantsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.viewers = append(f.viewers, input.ViewerAccountID)
	if f.err != nil {
		return nil, f.err
	}
	return &combat.ListParticipantsOutput{Participants: f.roster}, nil
}

func (f *fakeLister) set(roster []*entities.Participant) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roster = roster
}

type RosterHandlerTestSuite struct {
	suite.Suite
	feed   *changefeed.Memory
	lister *fakeLister
	server *httptest.Server
}

func TestRosterHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RosterHandlerTestSuite))
}

func (s *RosterHandlerTestSuite) SetupTest() {
	s.feed = changefeed.NewMemory()
	s.lister = &fakeLister{roster: []*entities.Participant{
		testutils.CreateTestPlayerParticipant("p1", testFightID, testutils.TestPlayerAccountID, testutils.TestCharacterName, 24, 14, 12),
	}}

	h, err := ws.NewRosterHandler(&ws.Config{Lister: s.lister, Subscriber: s.feed})
	s.Require().NoError(err)

	mux := http.NewServeMux()
	h.Register(mux)
	s.server = httptest.NewServer(mux)
	s.T().Cleanup(s.server.Close)
}

func (s *RosterHandlerTestSuite) dial(path string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + path
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	s.T().Cleanup(func() { _ = conn.Close() })
	return conn
}

func (s *RosterHandlerTestSuite) readFrame(conn *websocket.Conn) ws.Frame {
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	var frame ws.Frame
	s.Require().NoError(conn.ReadJSON(&frame))
	return frame
}

func (s *RosterHandlerTestSuite) TestNewRosterHandler_RequiresDependencies() {
	_, err := ws.NewRosterHandler(&ws.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = ws.NewRosterHandler(nil)
	s.Require().Error(err)
}

func (s *RosterHandlerTestSuite) TestSnapshotOnConnectThenOnChange() {
	conn := s.dial("/v1/fights/" + testFightID + "/participants/ws?account_id=" + testutils.TestPlayerAccountID)

	first := s.readFrame(conn)
	s.Equal(ws.FrameSnapshot, first.Type)
	s.Equal(testFightID, first.FightID)
	s.Equal(uint64(1), first.Sequence)
	s.Require().Len(first.Participants, 1)
	s.Equal(testutils.TestCharacterName, first.Participants[0].Name)

	goblin := testutils.CreateTestEnemy("e1", testFightID, "Goblin", 0, 0, 18)
	goblin.StatsHidden = true
	s.lister.set([]*entities.Participant{goblin, first.Participants[0]})
	s.Require().NoError(s.feed.Publish(context.Background(), changefeed.Event{
		FightID: testFightID,
		Table:   changefeed.TableParticipants,
		Op:      changefeed.OpInsert,
		At:      testutils.TestEpoch,
	}))

	next := s.readFrame(conn)
	s.Equal(uint64(2), next.Sequence)
	s.Require().Len(next.Participants, 2)
	s.Equal("Goblin", next.Participants[0].Name)
	s.True(next.Participants[0].StatsHidden)

	s.lister.mu.Lock()
	defer s.lister.mu.Unlock()
	for _, v := range s.lister.viewers {
		s.Equal(testutils.TestPlayerAccountID, v)
	}
}

func (s *RosterHandlerTestSuite) TestClientDisconnectReleasesSubscription() {
	conn := s.dial("/v1/fights/" + testFightID + "/participants/ws")
	s.readFrame(conn)
	s.Equal(1, s.feed.Subscribers(testFightID))

	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	_ = conn.Close()

	s.Eventually(func() bool {
		return s.feed.Subscribers(testFightID) == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func (s *RosterHandlerTestSuite) TestInitialFetchFailureRejectsUpgrade() {
	s.lister.mu.Lock()
	s.lister.err = errors.FightNotFound(testFightID)
	s.lister.mu.Unlock()

	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/v1/fights/" + testFightID + "/participants/ws"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().ErrorIs(err, websocket.ErrBadHandshake)
	s.Require().NotNil(resp)
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal(0, s.feed.Subscribers(testFightID))
}

func (s *RosterHandlerTestSuite) TestFeedEndSendsErrorFrame() {
	conn := s.dial("/v1/fights/" + testFightID + "/participants/ws")
	s.readFrame(conn)

	// closing the feed ends the engine without a client disconnect
	s.Require().NoError(s.feed.Close())

	frame := s.readFrame(conn)
	s.Equal(ws.FrameError, frame.Type)
	s.Equal("roster feed ended", frame.Error)
}

func (s *RosterHandlerTestSuite) TestUnknownRouteIsNotUpgraded() {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/v1/fights/"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().Error(err)
	s.Require().NotNil(resp)
	defer func() { _ = resp.Body.Close() }()
	s.Equal(http.StatusNotFound, resp.StatusCode)
}
