package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFPSLimiterDisabled(t *testing.T) {
	f := NewFPSLimiter(0)
	start := time.Now()
	for i := 0; i < 100; i++ {
		f.Wait()
	}
	assert.Less(t, time.Since(start), 50*time.Millisecond)
	assert.True(t, f.next.IsZero())
}

func TestFPSLimiterPacesFrames(t *testing.T) {
	f := NewFPSLimiter(100)
	start := time.Now()
	for i := 0; i < 5; i++ {
		f.Wait()
	}
	assert.GreaterOrEqual(t, time.Since(start), 45*time.Millisecond)
}

func TestFPSLimiterResyncsAfterHitch(t *testing.T) {
	f := NewFPSLimiter(1000)
	f.Wait()
	time.Sleep(20 * time.Millisecond)
	f.Wait()
	assert.True(t, f.next.After(time.Now().Add(-time.Millisecond)))
}
