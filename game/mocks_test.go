package game

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// --- NetworkSession ---

type MockNetworkSession struct {
	mock.Mock
}

func (m *MockNetworkSession) Close(reason string) {
	m.Called(reason)
}

func (m *MockNetworkSession) Write(data []byte) error {
	args := m.Called(data)
	return args.Error(0)
}

func (m *MockNetworkSession) Read() ([]byte, error) {
	args := m.Called()
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockNetworkSession) Ping() error {
	args := m.Called()
	return args.Error(0)
}

// --- Player ---

type MockPlayer struct {
	mock.Mock
}

// newMockPlayer wires up the identity calls every room handler makes.
func newMockPlayer(id, username string) *MockPlayer {
	m := &MockPlayer{}
	m.On("Id").Return(id)
	m.On("Username").Return(username)
	return m
}

func (m *MockPlayer) Id() string {
	return m.Called().String(0)
}

func (m *MockPlayer) Username() string {
	return m.Called().String(0)
}

func (m *MockPlayer) Send(data []byte) error {
	args := m.Called(data)
	return args.Error(0)
}

func (m *MockPlayer) Ping() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockPlayer) SetRoom(r Room) {
	m.Called(r)
}

func (m *MockPlayer) CancelAndRelease() {
	m.Called()
}

// --- randomizer ---

type MockRandomizer struct {
	mock.Mock
}

func (m *MockRandomizer) Perm(n int) []int {
	args := m.Called(n)
	return args.Get(0).([]int)
}

func (m *MockRandomizer) CoinFlip() bool {
	args := m.Called()
	return args.Bool(0)
}

// --- Room ---

type MockRoom struct {
	mock.Mock
}

func (m *MockRoom) GameLoop() {
	m.Called()
}

func (m *MockRoom) Tick(now time.Time) {
	m.Called(now)
}

func (m *MockRoom) PingPlayers() {
	m.Called()
}

func (m *MockRoom) Send(ctx context.Context, e ClientEventEnvelope) {
	m.Called(ctx, e)
}

func (m *MockRoom) RequestJoin(jreq RoomJoinRequest) {
	m.Called(jreq)
}

func (m *MockRoom) RemoveMe(ctx context.Context, p Player) {
	m.Called(ctx, p)
}

func (m *MockRoom) CloseAndRelease() {
	m.Called()
}

// --- Lobby ---

type MockLobby struct {
	mock.Mock
}

func (m *MockLobby) ForwardPlayerJoinRequestToRoom(ctx context.Context, jreq RoomJoinRequest) {
	m.Called(ctx, jreq)
}

func (m *MockLobby) RemoveRoom(roomId string) {
	m.Called(roomId)
}

// --- PeriodicTickerChannelCreator ---

type MockPeriodicTickerChannelCreator struct {
	mock.Mock
}

func (m *MockPeriodicTickerChannelCreator) Create(duration time.Duration) <-chan time.Time {
	args := m.Called(duration)
	return args.Get(0).(chan time.Time)
}
