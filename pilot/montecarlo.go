// SPDX-License-Identifier: Apache-2.0
// Copyright 2020,2021 Marcus Soll
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	  http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pilot

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"golang.org/x/exp/rand"

	"msoll.eu/user/msoll/snake"
)

const (
	// DefaultThink is the time MonteCarlo simulates if the context has no deadline.
	DefaultThink = 50 * time.Millisecond
	// DefaultDepth is the number of ticks a single rollout is played at most.
	DefaultDepth = 60
	// survivalThreshold is the survival rate above which food is preferred over length.
	survivalThreshold = 0.85
)

// Stats holds the collected rollout results of a single direction.
type Stats struct {
	Run      int
	Survived int // rollouts that did not end the game
	Food     int // food eaten over all rollouts
	Ticks    int // ticks played over all rollouts
}

// SurvivalRate returns the fraction of rollouts which did not end the game.
func (s Stats) SurvivalRate() float64 {
	if s.Run == 0 {
		return 0
	}
	return float64(s.Survived) / float64(s.Run)
}

// AverageFood returns the food eaten per rollout.
func (s Stats) AverageFood() float64 {
	if s.Run == 0 {
		return 0
	}
	return float64(s.Food) / float64(s.Run)
}

// AverageTicks returns the ticks played per rollout.
func (s Stats) AverageTicks() float64 {
	if s.Run == 0 {
		return 0
	}
	return float64(s.Ticks) / float64(s.Run)
}

type rolloutResult struct {
	dir      snake.Direction
	survived bool
	food     int
	ticks    int
}

// MonteCarlo simulates random games for every safe direction until the deadline
// of the context (or Think if there is none) and picks the direction with the best outcome.
//
// The zero value is ready to use.
type MonteCarlo struct {
	Workers int           // number of simulating goroutines, runtime.NumCPU() if 0
	Depth   int           // maximum rollout length, DefaultDepth if 0
	Think   time.Duration // simulation time without a context deadline, DefaultThink if 0
	Seed    uint64        // seed for the rollouts, wall clock if 0

	stats  map[snake.Direction]Stats
	reason string
	round  uint64
}

// Next implements Pilot.
func (m *MonteCarlo) Next(ctx context.Context, g *snake.Game) snake.Direction {
	m.round++
	m.stats = make(map[snake.Direction]Stats)

	safe := safeDirections(g)
	switch len(safe) {
	case 0:
		m.reason = "no safe move"
		return g.Dir()
	case 1:
		m.reason = "only safe move"
		return safe[0]
	}

	if _, ok := ctx.Deadline(); !ok {
		think := m.Think
		if think <= 0 {
			think = DefaultThink
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, think)
		defer cancel()
	}
	ctxWorker, ctxWorkerCancel := context.WithCancel(ctx)

	numberWorker := m.Workers
	if numberWorker <= 0 {
		numberWorker = runtime.NumCPU()
	}
	depth := m.Depth
	if depth <= 0 {
		depth = DefaultDepth
	}
	seed := m.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	results := make(chan rolloutResult, numberWorker)
	var wg sync.WaitGroup
	for i := 0; i < numberWorker; i++ {
		base := g.Copy(nil)
		rng := rand.New(rand.NewSource(seed + m.round<<16 + uint64(i)))
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctxWorker.Done():
					return
				default:
				}
				d := safe[rng.Intn(len(safe))]
				r := rollout(base, d, depth, rng)
				select {
				case results <- r:
				case <-ctxWorker.Done():
					return
				}
			}
		}()
	}

collectorWorker:
	for {
		select {
		case r := <-results:
			s := m.stats[r.dir]
			s.Run++
			if r.survived {
				s.Survived++
			}
			s.Food += r.food
			s.Ticks += r.ticks
			m.stats[r.dir] = s
		case <-ctx.Done():
			break collectorWorker
		}
	}
	ctxWorkerCancel()
	wg.Wait()

	return m.choose(safe)
}

// rollout plays d and then random safe moves on a copy of base.
func rollout(base *snake.Game, d snake.Direction, depth int, rng *rand.Rand) rolloutResult {
	c := base.Copy(rand.NewSource(rng.Uint64()))
	c.ChangeDirection(d)
	c.Move()
	ticks := 1
	for ticks < depth && !c.GameOver() {
		// mostly keep going straight so rollouts do not wiggle in place
		if rng.Intn(3) == 0 {
			safe := safeDirections(c)
			if len(safe) > 0 {
				c.ChangeDirection(safe[rng.Intn(len(safe))])
			}
		}
		c.Move()
		ticks++
	}
	return rolloutResult{
		dir:      d,
		survived: !c.GameOver(),
		food:     c.Score() - base.Score(),
		ticks:    ticks,
	}
}

func (m *MonteCarlo) choose(safe []snake.Direction) snake.Direction {
	best := 0.0
	action := safe[0]
	m.reason = ""

	for _, d := range safe {
		s := m.stats[d]
		if s.Run == 0 {
			continue
		}
		if s.SurvivalRate() > survivalThreshold && (m.reason == "" || s.AverageFood() > best) {
			best = s.AverageFood()
			action = d
			m.reason = fmt.Sprintf("survival > %.0f%%", survivalThreshold*100)
		}
	}
	if m.reason != "" {
		return action
	}

	best = 0.0
	for _, d := range safe {
		s := m.stats[d]
		if s.Run == 0 {
			continue
		}
		if s.AverageTicks() > best {
			best = s.AverageTicks()
			action = d
			m.reason = "average length"
		}
	}
	if m.reason == "" {
		m.reason = "fallback"
	}
	return action
}

// Stats returns the rollout statistics of the last call to Next.
func (m *MonteCarlo) Stats() map[snake.Direction]Stats {
	out := make(map[snake.Direction]Stats, len(m.stats))
	for k, v := range m.stats {
		out[k] = v
	}
	return out
}

// Name implements Pilot.
func (m *MonteCarlo) Name() string {
	return "montecarlo"
}

// Explain implements Explainer.
func (m *MonteCarlo) Explain() string {
	return m.reason
}
