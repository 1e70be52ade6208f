package fetch

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResult_OkAndFail(t *testing.T) {
	at := time.Date(2026, 4, 20, 18, 0, 0, 0, time.UTC)
	ok := Ok(42, at)
	assert.True(t, ok.IsOk())
	v, got := ok.Value()
	assert.Equal(t, 42, v)
	assert.Equal(t, at, got)
	assert.Nil(t, ok.Err())

	failed := FailWith[int](NotFound, "launch %s", "x")
	assert.False(t, failed.IsOk())
	v, got = failed.Value()
	assert.Zero(t, v)
	assert.True(t, got.IsZero())
	assert.Equal(t, "not_found: launch x", failed.Err().Error())

	assert.Equal(t, NetworkFailure, Fail[int](nil).Err().Kind)
}

func TestMap(t *testing.T) {
	at := time.Unix(1700000000, 0)

	doubled := Map(Ok(2, at), func(v int) (int, error) { return v * 2, nil })
	v, got := doubled.Value()
	assert.Equal(t, 4, v)
	assert.Equal(t, at, got)

	parse := Map(Ok("x", at), func(string) (int, error) { return 0, errors.New("bad number") })
	assert.Equal(t, ParseFailure, parse.Err().Kind)

	typed := Map(Ok("x", at), func(string) (int, error) { return 0, Errorf(InvalidInput, "nope") })
	assert.Equal(t, InvalidInput, typed.Err().Kind)

	passthrough := Map(FailWith[string](NetworkFailure, "down"), func(string) (int, error) {
		t.Fatal("fn must not run on a failed result")
		return 0, nil
	})
	assert.Equal(t, NetworkFailure, passthrough.Err().Kind)
}

func TestIsKind_Wrapped(t *testing.T) {
	err := fmt.Errorf("lookup: %w", Errorf(NotFound, "Mission not found"))

	assert.True(t, IsKind(err, NotFound))
	assert.False(t, IsKind(err, InvalidInput))
	assert.False(t, IsKind(errors.New("plain"), NotFound))
}
