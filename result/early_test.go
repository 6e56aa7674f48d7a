package result_test

import (
	"errors"
	"github.com/brickingsoft/wraps"
	"github.com/brickingsoft/wraps/option"
	"github.com/brickingsoft/wraps/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestCatch(t *testing.T) {
	ratio := func(a, b, c int) result.Result[int, error] {
		return result.Catch(func() result.Result[int, error] {
			x := divide(a, b).Early()
			return result.Ok[int, error](divide(x, c).Early())
		})
	}
	assert.Equal(t, result.Ok[int, error](2), ratio(12, 3, 2))
	assert.Equal(t, result.Err[int](errDivideByZero), ratio(12, 0, 2))
	assert.Equal(t, result.Err[int](errDivideByZero), ratio(12, 3, 0))
}

func TestCatchOk(t *testing.T) {
	steps := 0
	r := result.CatchOk[int, error](func() int {
		steps++
		v := divide(1, 0).Early()
		steps++
		return v
	})
	assert.Equal(t, result.Err[int](errDivideByZero), r)
	assert.Equal(t, 1, steps)
}

func TestEarly_Decorator(t *testing.T) {
	quarter := result.Early(func(v int) result.Result[int, error] {
		return result.Ok[int, error](divide(divide(v, 2).Early(), 2).Early())
	})
	assert.Equal(t, result.Ok[int, error](5), quarter(20))
}

func TestEarly_SentinelCannotEscape(t *testing.T) {
	r := panicValue(func() {
		divide(1, 0).Early()
	})
	require.NotNil(t, r)
	err, ok := r.(error)
	require.True(t, ok)
	assert.True(t, wraps.IsEarlyOutsideBoundary(err))
	assert.Contains(t, err.Error(), "divide by zero")
}

func TestCatch_OtherErrorTypePropagates(t *testing.T) {
	// 错误类型不同的边界不回收短路
	r := panicValue(func() {
		result.Catch(func() result.Result[int, string] {
			divide(1, 0).Early()
			return result.Ok[int, string](1)
		})
	})
	err, ok := r.(error)
	require.True(t, ok)
	assert.True(t, wraps.IsEarlyOutsideBoundary(err))

	outer := result.Catch(func() result.Result[int, error] {
		result.Catch(func() result.Result[int, string] {
			divide(1, 0).Early()
			return result.Ok[int, string](1)
		})
		return result.Ok[int, error](1)
	})
	assert.Equal(t, result.Err[int](errDivideByZero), outer)
}

func TestCatch_OptionEarlyPropagates(t *testing.T) {
	o := option.Catch(func() option.Option[int] {
		r := result.Catch(func() result.Result[int, error] {
			option.Null[int]().Early()
			return result.Ok[int, error](1)
		})
		return option.Some(r.Unwrap())
	})
	assert.True(t, o.IsNull())
}

func TestCatch_PropagatesOtherPanics(t *testing.T) {
	boom := errors.New("boom")
	r := panicValue(func() {
		result.Catch(func() result.Result[int, error] {
			panic(boom)
		})
	})
	assert.Equal(t, boom, r)
}

func TestCatch_SentinelRunsWhenOk(t *testing.T) {
	for _, tc := range []struct {
		b       int
		reached bool
	}{
		{2, true},
		{0, false},
	} {
		reached := false
		r := result.CatchOk[int, error](func() int {
			v := divide(10, tc.b).Early()
			reached = true
			return v
		})
		assert.Equal(t, tc.reached, reached)
		assert.Equal(t, divide(10, tc.b), r)
	}
}
