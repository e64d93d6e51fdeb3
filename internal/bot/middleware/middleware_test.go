package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

type fakeContext struct {
	tele.Context

	sender   *tele.User
	callback *tele.Callback

	sent      []interface{}
	replies   []interface{}
	responses []*tele.CallbackResponse
}

func (f *fakeContext) Sender() *tele.User { return f.sender }
func (f *fakeContext) Chat() *tele.Chat { return &tele.Chat{ID: 1} }
func (f *fakeContext) Message() *tele.Message { return &tele.Message{Text: "/grid"} }
func (f *fakeContext) Callback() *tele.Callback { return f.callback }

func (f *fakeContext) Send(what interface{}, opts ...interface{}) error {
	f.sent = append(f.sent, what)
	return nil
}

func (f *fakeContext) Reply(what interface{}, opts ...interface{}) error {
	f.replies = append(f.replies, what)
	return nil
}

func (f *fakeContext) Respond(resp ...*tele.CallbackResponse) error {
	f.responses = append(f.responses, resp...)
	return nil
}

type countingLimiter struct {
	counts map[int64]int64
	err    error
}

func (l *countingLimiter) IncrementUserRateLimit(ctx context.Context, userID int64) (int64, error) {
	if l.err != nil {
		return 0, l.err
	}
	l.counts[userID]++
	return l.counts[userID], nil
}

func TestRateLimit(t *testing.T) {
	limiter := &countingLimiter{counts: map[int64]int64{}}
	calls := 0
	handler := RateLimit(limiter, zap.NewNop())(func(c tele.Context) error {
		calls++
		return nil
	})

	c := &fakeContext{sender: &tele.User{ID: 9}}
	for i := 0; i < MaxRequestsPerMinute+2; i++ {
		require.NoError(t, handler(c))
	}

	assert.Equal(t, MaxRequestsPerMinute, calls)
	assert.Len(t, c.replies, 2)

	cb := &fakeContext{sender: &tele.User{ID: 9}, callback: &tele.Callback{Data: "row:1"}}
	require.NoError(t, handler(cb))
	assert.Len(t, cb.responses, 1)
	assert.Empty(t, cb.replies)
}

func TestRateLimitFailsOpen(t *testing.T) {
	limiter := &countingLimiter{err: errors.New("redis down")}
	calls := 0
	handler := RateLimit(limiter, zap.NewNop())(func(c tele.Context) error {
		calls++
		return nil
	})

	require.NoError(t, handler(&fakeContext{sender: &tele.User{ID: 1}}))
	require.NoError(t, handler(&fakeContext{}))

	assert.Equal(t, 2, calls)
}

func TestRecovery(t *testing.T) {
	handler := Recovery(zap.NewNop())(func(c tele.Context) error {
		panic("boom")
	})

	c := &fakeContext{}
	assert.NotPanics(t, func() {
		assert.NoError(t, handler(c))
	})
	require.Len(t, c.sent, 1)
	assert.Contains(t, c.sent[0], "Something went wrong")
}

func TestLoggerPassesError(t *testing.T) {
	boom := errors.New("boom")
	handler := Logger(zap.NewNop())(func(c tele.Context) error {
		return boom
	})

	err := handler(&fakeContext{sender: &tele.User{ID: 3}})

	assert.ErrorIs(t, err, boom)
}
