package async_test

import (
	"context"
	"github.com/brickingsoft/wraps/async"
	"github.com/brickingsoft/wraps/either"
	"github.com/brickingsoft/wraps/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strconv"
	"testing"
)

func awaitEither[L any, R any](t *testing.T, fe async.FutureEither[L, R]) either.Either[L, R] {
	t.Helper()
	e, err := fe.Await(context.Background())
	require.NoError(t, err)
	return e
}

func TestFutureEither_Variants(t *testing.T) {
	l := async.FutureLeft[int, string](1)
	r := async.FutureRight[int]("r")
	assert.True(t, awaitValue(t, l.IsLeft()))
	assert.True(t, awaitValue(t, r.IsRight()))
	assert.Equal(t, 1, awaitValue(t, l.UnwrapLeft()))
	assert.Equal(t, "r", awaitValue(t, r.UnwrapRight()))
	assert.Equal(t, option.Some(1), awaitOption(t, l.Left()))
	assert.Equal(t, option.Null[string](), awaitOption(t, l.Right()))
	assert.Equal(t, either.Left[string, int]("r"), awaitEither(t, r.Flip()))

	v := panicValue(func() {
		_, _ = r.UnwrapLeft().Await(context.Background())
	})
	assert.NotNil(t, v)
}

func TestFutureEither_Inspect(t *testing.T) {
	var lefts []int
	var rights []string
	awaitEither(t, async.FutureLeft[int, string](1).InspectLeft(func(v int) { lefts = append(lefts, v) }).InspectRight(func(v string) { rights = append(rights, v) }))
	awaitEither(t, async.FutureRight[int]("a").InspectLeft(func(v int) { lefts = append(lefts, v) }).InspectRight(func(v string) { rights = append(rights, v) }))
	assert.Equal(t, []int{1}, lefts)
	assert.Equal(t, []string{"a"}, rights)
}

func TestFutureEither_Map(t *testing.T) {
	assert.Equal(t, either.Left[string, string]("1"), awaitEither(t, async.MapLeft(async.FutureLeft[int, string](1), strconv.Itoa)))
	assert.Equal(t, either.Right[int](2), awaitEither(t, async.MapRight(async.FutureRight[int]("ab"), func(s string) int { return len(s) })))
	assert.Equal(t, either.Right[string]("r"), awaitEither(t, async.MapLeft(async.FutureRight[int]("r"), strconv.Itoa)))

	both := async.MapEither(async.FutureRight[int]("abc"), strconv.Itoa, func(s string) int { return len(s) })
	assert.Equal(t, either.Right[string](3), awaitEither(t, both))

	folded := async.FoldEither(async.FutureLeft[int, string](4), func(v int) string { return strconv.Itoa(v) }, func(s string) string { return s })
	assert.Equal(t, "4", awaitValue(t, folded))
}

func TestFutureEither_MapAwait(t *testing.T) {
	calls := 0
	double := func(v int) async.Awaitable[int] {
		calls++
		return async.SucceedImmediately(v * 2)
	}
	assert.Equal(t, either.Left[int, string](4), awaitEither(t, async.MapLeftAwait(async.FutureLeft[int, string](2), double)))
	assert.Equal(t, either.Right[int]("r"), awaitEither(t, async.MapLeftAwait(async.FutureRight[int]("r"), double)))
	assert.Equal(t, 1, calls)

	assert.Equal(t, either.Right[string](6), awaitEither(t, async.MapRightAwait(async.FutureRight[string](3), double)))
	assert.Equal(t, either.Left[string, int]("l"), awaitEither(t, async.MapRightAwait(async.FutureLeft[string, int]("l"), double)))
	assert.Equal(t, 2, calls)
}

func TestFutureEither_AndThen(t *testing.T) {
	half := func(v int) either.Either[int, string] {
		if v%2 != 0 {
			return either.Right[int]("odd")
		}
		return either.Left[int, string](v / 2)
	}
	assert.Equal(t, either.Left[int, string](2), awaitEither(t, async.LeftAndThen(async.FutureLeft[int, string](4), half)))
	assert.Equal(t, either.Right[int]("odd"), awaitEither(t, async.LeftAndThen(async.FutureLeft[int, string](3), half)))
	assert.Equal(t, either.Right[int](1), awaitEither(t, async.RightAndThen(async.FutureRight[int]("a"), func(s string) either.Either[int, int] {
		return either.Right[int](len(s))
	})))
}
