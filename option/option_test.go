package option_test

import (
	"github.com/brickingsoft/wraps"
	"github.com/brickingsoft/wraps/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"
)

const propertyN = 1000

func panicValue(fn func()) (r any) {
	defer func() {
		r = recover()
	}()
	fn()
	return
}

func TestOption_Variants(t *testing.T) {
	some := option.Some(3)
	assert.True(t, some.IsSome())
	assert.False(t, some.IsNull())
	assert.Equal(t, 3, some.Unwrap())

	null := option.Null[int]()
	assert.False(t, null.IsSome())
	assert.True(t, null.IsNull())

	var zero option.Option[int]
	assert.True(t, zero.IsNull())
	assert.Equal(t, null, zero)
}

func TestOption_Equality(t *testing.T) {
	assert.True(t, option.Some(1) == option.Some(1))
	assert.False(t, option.Some(1) == option.Some(2))
	assert.True(t, option.Null[int]() == option.Null[int]())
	assert.False(t, option.Some(0) == option.Null[int]())
}

func TestOption_Unwrap_Null(t *testing.T) {
	r := panicValue(func() {
		option.Null[string]().Unwrap()
	})
	require.NotNil(t, r)
	err, ok := r.(error)
	require.True(t, ok)
	assert.True(t, wraps.IsUnwrapFailed(err))
	t.Log(err)
}

func TestOption_Expect(t *testing.T) {
	assert.Equal(t, "v", option.Some("v").Expect("present"))
	r := panicValue(func() {
		option.Null[string]().Expect("value must be present")
	})
	err, ok := r.(error)
	require.True(t, ok)
	assert.True(t, wraps.IsUnwrapFailed(err))
	assert.Contains(t, err.Error(), "value must be present")
}

func TestOption_UnwrapOr(t *testing.T) {
	assert.Equal(t, 3, option.Some(3).UnwrapOr(5))
	assert.Equal(t, 5, option.Null[int]().UnwrapOr(5))

	calls := 0
	fallback := func() int {
		calls++
		return 7
	}
	assert.Equal(t, 3, option.Some(3).UnwrapOrElse(fallback))
	assert.Equal(t, 0, calls)
	assert.Equal(t, 7, option.Null[int]().UnwrapOrElse(fallback))
	assert.Equal(t, 1, calls)

	assert.Equal(t, 0, option.Null[int]().UnwrapOrZero())
}

func TestOption_Predicates(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }
	assert.True(t, option.Some(2).IsSomeAnd(even))
	assert.False(t, option.Some(3).IsSomeAnd(even))
	assert.False(t, option.Null[int]().IsSomeAnd(even))

	assert.Equal(t, option.Some(2), option.Some(2).Filter(even))
	assert.Equal(t, option.Null[int](), option.Some(3).Filter(even))
	assert.True(t, option.Contains(option.Some("a"), "a"))
	assert.False(t, option.Contains(option.Null[string](), "a"))
}

func TestOption_OrXor(t *testing.T) {
	a, b, n := option.Some(1), option.Some(2), option.Null[int]()
	assert.Equal(t, a, a.Or(b))
	assert.Equal(t, b, n.Or(b))
	assert.Equal(t, b, n.OrElse(func() option.Option[int] { return b }))
	assert.Equal(t, a, a.Xor(n))
	assert.Equal(t, b, n.Xor(b))
	assert.Equal(t, n, a.Xor(b))
	assert.Equal(t, n, n.Xor(n))
}

func TestOption_Inspect(t *testing.T) {
	var seen []int
	option.Some(4).Inspect(func(v int) { seen = append(seen, v) })
	option.Null[int]().Inspect(func(v int) { seen = append(seen, v) })
	assert.Equal(t, []int{4}, seen)
}

func TestOption_Bridges(t *testing.T) {
	v := 9
	assert.Equal(t, option.Some(9), option.FromPointer(&v))
	assert.Equal(t, option.Null[int](), option.FromPointer[int](nil))

	m := map[string]int{"a": 1}
	got, ok := m["a"]
	assert.Equal(t, option.Some(1), option.FromOk(got, ok))
	got, ok = m["b"]
	assert.Equal(t, option.Null[int](), option.FromOk(got, ok))

	var np *int
	assert.True(t, option.FromNullable(np).IsNull())
	var ns []int
	assert.True(t, option.FromNullable(ns).IsNull())
	var ne error
	assert.True(t, option.FromNullable(ne).IsNull())
	assert.True(t, option.FromNullable([]int{}).IsSome())
	assert.True(t, option.FromNullable(0).IsSome())

	p := option.Some(5).Extract()
	require.NotNil(t, p)
	*p = 6
	assert.Equal(t, 6, *p)
	assert.Nil(t, option.Null[int]().Extract())
}

func TestOption_Iter(t *testing.T) {
	assert.Equal(t, []int{1}, slices.Collect(option.Some(1).Iter()))
	assert.Empty(t, slices.Collect(option.Null[int]().Iter()))
}

func TestOption_String(t *testing.T) {
	assert.Equal(t, "Some(1)", option.Some(1).String())
	assert.Equal(t, "Null", option.Null[int]().String())
}

func TestMap(t *testing.T) {
	calls := 0
	double := func(v int) int {
		calls++
		return v * 2
	}
	assert.Equal(t, option.Some(6), option.Map(option.Some(3), double))
	assert.Equal(t, option.Null[int](), option.Map(option.Null[int](), double))
	assert.Equal(t, 1, calls)

	assert.Equal(t, "3", option.MapOr(option.Some(3), "none", strconv.Itoa))
	assert.Equal(t, "none", option.MapOr(option.Null[int](), "none", strconv.Itoa))
	assert.Equal(t, "none", option.MapOrElse(option.Null[int](), func() string { return "none" }, strconv.Itoa))
}

func TestAndThen(t *testing.T) {
	parse := func(s string) option.Option[int] {
		v, err := strconv.Atoi(s)
		if err != nil {
			return option.Null[int]()
		}
		return option.Some(v)
	}
	assert.Equal(t, option.Some(12), option.AndThen(option.Some("12"), parse))
	assert.Equal(t, option.Null[int](), option.AndThen(option.Some("x"), parse))
	assert.Equal(t, option.Null[int](), option.AndThen(option.Null[string](), parse))
	assert.Equal(t, option.Some("b"), option.And(option.Some(1), option.Some("b")))
	assert.Equal(t, option.Null[string](), option.And(option.Null[int](), option.Some("b")))
}

func TestZip(t *testing.T) {
	z := option.Zip(option.Some(1), option.Some("a"))
	assert.Equal(t, option.Some(option.Pair[int, string]{First: 1, Second: "a"}), z)
	assert.True(t, option.Zip(option.Some(1), option.Null[string]()).IsNull())

	first, second := option.Unzip(z)
	assert.Equal(t, option.Some(1), first)
	assert.Equal(t, option.Some("a"), second)

	sum := option.ZipWith(option.Some(1), option.Some(2), func(a, b int) int { return a + b })
	assert.Equal(t, option.Some(3), sum)
}

func TestFlatten(t *testing.T) {
	assert.Equal(t, option.Some(1), option.Flatten(option.Some(option.Some(1))))
	assert.Equal(t, option.Null[int](), option.Flatten(option.Some(option.Null[int]())))
	assert.Equal(t, option.Null[int](), option.Flatten(option.Null[option.Option[int]]()))
}

func randomOption(r *rand.Rand) option.Option[int] {
	if r.IntN(2) == 0 {
		return option.Null[int]()
	}
	return option.Some(r.IntN(100))
}

func TestOption_MonadLaws(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 0))
	f := func(v int) option.Option[int] {
		if v%3 == 0 {
			return option.Null[int]()
		}
		return option.Some(v + 1)
	}
	g := func(v int) option.Option[int] {
		return option.Some(v * 2)
	}
	for i := 0; i < propertyN; i++ {
		v := r.IntN(100)
		m := randomOption(r)
		// left identity
		assert.Equal(t, f(v), option.AndThen(option.Some(v), f))
		// right identity
		assert.Equal(t, m, option.AndThen(m, option.Some[int]))
		// associativity
		left := option.AndThen(option.AndThen(m, f), g)
		right := option.AndThen(m, func(x int) option.Option[int] {
			return option.AndThen(f(x), g)
		})
		assert.Equal(t, left, right)
		// unwrap_or totality
		assert.Equal(t, m.IsSome(), m.UnwrapOr(-1) != -1)
	}
}

func TestExtract_RoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 0))
	for i := 0; i < propertyN; i++ {
		v := r.IntN(1000)
		assert.Equal(t, option.Some(v), option.FromPointer(option.FromPointer(option.Some(v).Extract()).Extract()))
	}
	assert.Nil(t, option.FromPointer(option.Null[int]().Extract()).Extract())
}
