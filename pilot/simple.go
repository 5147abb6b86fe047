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
	"time"

	"golang.org/x/exp/rand"

	"msoll.eu/user/msoll/snake"
)

// Random moves in a random direction that does not end the game next tick.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random pilot with a deterministic source.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Next implements Pilot.
func (r *Random) Next(ctx context.Context, g *snake.Game) snake.Direction {
	if r.rng == nil {
		r.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	safe := safeDirections(g)
	if len(safe) == 0 {
		return g.Dir()
	}
	return safe[r.rng.Intn(len(safe))]
}

// Name implements Pilot.
func (r *Random) Name() string {
	return "random"
}

// Greedy heads for the food on the shortest path. Moves that leave less room than
// the snake is long are only taken if nothing else is left.
type Greedy struct {
	reason string
}

// Next implements Pilot.
func (gr *Greedy) Next(ctx context.Context, g *snake.Game) snake.Direction {
	food, hasFood := g.Food()
	need := g.Len()
	free := g.Rows()*g.Cols() - g.Len()

	best := g.Dir()
	bestRoomy := false
	bestDistance := -1
	bestSpace := -1
	gr.reason = "no safe move"

	for _, d := range safeDirections(g) {
		hit, space := lookahead(g, d, need)
		roomy := space > need || space >= free-1
		distance := 0
		if hasFood && hit != snake.Food {
			distance = g.Head().Translate(d).Distance(food)
		}

		better := false
		switch {
		case bestSpace == -1:
			better = true
		case roomy != bestRoomy:
			better = roomy
		case !roomy:
			better = space > bestSpace
		case distance != bestDistance:
			better = distance < bestDistance
		default:
			better = space > bestSpace
		}
		if better {
			best, bestRoomy, bestDistance, bestSpace = d, roomy, distance, space
			if roomy {
				gr.reason = "shortest way to food"
			} else {
				gr.reason = "largest free space"
			}
		}
	}
	return best
}

// Name implements Pilot.
func (gr *Greedy) Name() string {
	return "greedy"
}

// Explain implements Explainer.
func (gr *Greedy) Explain() string {
	return gr.reason
}
