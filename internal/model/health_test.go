package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_TakeDamage(t *testing.T) {
	h := NewHealth(100, 0)

	require.True(t, h.TakeDamage(0, 30))
	assert.Equal(t, 70.0, h.Current())
	assert.False(t, h.IsDead())

	require.True(t, h.TakeDamage(0, 500))
	assert.Equal(t, 0.0, h.Current(), "health must not go below zero")
	assert.True(t, h.IsDead())

	assert.False(t, h.TakeDamage(time.Second, 1), "dead entity ignores damage")
}

func TestHealth_InvulnerabilityWindow(t *testing.T) {
	h := NewHealth(100, time.Second)

	require.True(t, h.TakeDamage(500*time.Millisecond, 10))
	assert.True(t, h.IsInvulnerable(time.Second))

	// Внутри окна неуязвимости удар игнорируется
	assert.False(t, h.TakeDamage(1400*time.Millisecond, 10))
	assert.Equal(t, 90.0, h.Current())

	// Окно закрыто ровно через секунду после удара
	assert.True(t, h.TakeDamage(1500*time.Millisecond, 10))
	assert.Equal(t, 80.0, h.Current())
}

func TestHealth_NegativeDamageClamped(t *testing.T) {
	h := NewHealth(50, 0)
	require.True(t, h.TakeDamage(0, -20))
	assert.Equal(t, 50.0, h.Current())
}

func TestHealth_SetMaxHealsToFull(t *testing.T) {
	h := NewHealth(100, 0)
	h.TakeDamage(0, 60)

	h.SetMax(120)
	assert.Equal(t, 120.0, h.Max())
	assert.Equal(t, 120.0, h.Current())
}

func TestHealth_SetMaxKeepsDead(t *testing.T) {
	h := NewHealth(10, 0)
	h.TakeDamage(0, 10)
	h.SetMax(100)
	assert.True(t, h.IsDead())
	assert.Equal(t, 0.0, h.Current())
}

func TestHealth_ResizeClampsWithoutHealing(t *testing.T) {
	h := NewHealth(100, 0)
	require.True(t, h.TakeDamage(0, 40))

	h.Resize(120)
	assert.Equal(t, 60.0, h.Current())
	assert.Equal(t, 120.0, h.Max())

	h.Resize(50)
	assert.Equal(t, 50.0, h.Current())
}

func TestHealth_ResetRevives(t *testing.T) {
	h := NewHealth(10, time.Second)
	require.True(t, h.TakeDamage(0, 10))
	require.True(t, h.IsDead())

	h.Reset()
	assert.False(t, h.IsDead())
	assert.Equal(t, 10.0, h.Current())
	assert.False(t, h.IsInvulnerable(0))
}
