package async

import (
	"context"
	"errors"
	"testing"
	"time"

	tigererrors "github.com/authcorp/libs/go/tiger/errors"
	"github.com/authcorp/libs/go/tiger/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueAndFail(t *testing.T) {
	ctx := context.Background()

	v, err := Value(7).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	boom := errors.New("boom")
	_, err = Fail[int](boom).Await(ctx)
	assert.ErrorIs(t, err, boom)
}

func TestAdaptersPreserveNil(t *testing.T) {
	assert.Nil(t, FromFunc[int](nil))
	assert.Nil(t, FromAction(nil))
	assert.Nil(t, Lift[int, int](nil))
	assert.Nil(t, Action[int](nil))
}

func TestAdapters(t *testing.T) {
	ctx := context.Background()

	n, err := FromFunc(func() int { return 3 }).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	s, err := Lift(func(i int) string { return string(rune('a' + i)) }).Call(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "b", s)

	var seen int
	u, err := Action(func(i int) { seen = i }).Call(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, unit.Value, u)
	assert.Equal(t, 9, seen)

	called := false
	_, err = FromAction(func() { called = true }).Await(ctx)
	require.NoError(t, err)
	assert.True(t, called)
}

func TestAwaitNilPanics(t *testing.T) {
	var task Task[int]
	assert.PanicsWithError(t, tigererrors.ArgumentNil("task").Error(), func() {
		_, _ = task.Await(context.Background())
	})
}

func TestFuture(t *testing.T) {
	ctx := context.Background()
	release := make(chan struct{})

	f := NewFuture(ctx, func(context.Context) (string, error) {
		<-release
		return "done", nil
	})
	assert.False(t, f.IsDone())

	close(release)
	v, err := f.Wait()
	require.NoError(t, err)
	assert.Equal(t, "done", v)
	assert.True(t, f.IsDone())
}

func TestFutureTaskHonoursContext(t *testing.T) {
	block := make(chan struct{})
	t.Cleanup(func() { close(block) })

	f := NewFuture(context.Background(), func(context.Context) (int, error) {
		<-block
		return 0, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.Task().Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestResolveReject(t *testing.T) {
	v, err := Resolve(5).Task().Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	boom := errors.New("boom")
	_, err = Reject[int](boom).Wait()
	assert.ErrorIs(t, err, boom)
}
