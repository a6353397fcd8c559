// Package core_test verifies that snapshots never observe torn weather updates.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skyroute/core"
)

// TestConcurrentWeatherAndSnapshot toggles weather from many writers while
// readers take snapshots; every snapshot must show both directions of every
// pair in agreement, and availability coupled to weather.
func TestConcurrentWeatherAndSnapshot(t *testing.T) {
	g, a, b, c := newTriangle(t)
	pairs := [][2]int{{a, b}, {b, c}, {a, c}}

	var wg sync.WaitGroup
	wg.Add(NWriters + NReaders)
	errCh := make(chan error, NReaders)

	for i := 0; i < NWriters; i++ {
		go func(id int) {
			defer wg.Done()
			p := pairs[id%len(pairs)]
			_ = g.UpdateWeather(p[0], p[1], id%2 == 0, fmt.Sprintf("w%d", id))
		}(i)
	}
	for i := 0; i < NReaders; i++ {
		go func() {
			defer wg.Done()
			snap := g.Snapshot()
			for _, p := range pairs {
				fwd, back := snap.Weather(p[0], p[1]), snap.Weather(p[1], p[0])
				if fwd != back {
					errCh <- fmt.Errorf("torn weather on %v: %v vs %v", p, fwd, back)
					return
				}
				if snap.Available(p[0], p[1]) == fwd.IsBad() {
					errCh <- fmt.Errorf("availability decoupled on %v", p)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}
}

// TestConcurrentAddNode ensures parallel inserts keep indices unique.
func TestConcurrentAddNode(t *testing.T) {
	g := core.NewGraph()
	var wg sync.WaitGroup
	wg.Add(NWriters)
	for i := 0; i < NWriters; i++ {
		go func(id int) {
			defer wg.Done()
			_, _ = g.AddNode(fmt.Sprintf("N%02d", id), core.Position{})
		}(i)
	}
	wg.Wait()

	require.Equal(t, NWriters, g.Order())
	seen := make(map[string]bool, NWriters)
	for _, n := range g.Nodes() {
		require.False(t, seen[n.Code], "duplicate %s", n.Code)
		seen[n.Code] = true
	}
}
