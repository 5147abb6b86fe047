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

package main

import (
	"fmt"
	"strings"
	"time"

	"msoll.eu/user/msoll/snake"
)

// The UI interface allows the usage of different UIs.
//
// Finish gets the final game, or nil if the program is shutting down because of an error.
type UI interface {
	Initialise() error
	NewRound(g *snake.Game, tick int)
	NewData(data TickData)
	Finish(g *snake.Game) error
	Wait()
}

// inputUI is implemented by UIs which read directions from the user.
// Done is closed once the user quits.
type inputUI interface {
	Input() <-chan snake.Direction
	Done() <-chan struct{}
}

// inputOf returns the input channels of ui. A UI without input returns nil
// channels, which block forever.
func inputOf(ui UI) (<-chan snake.Direction, <-chan struct{}) {
	if in, ok := ui.(inputUI); ok {
		return in.Input(), in.Done()
	}
	return nil, nil
}

func buildGameOverviewStrings(data TickData) []string {
	g := data.Game
	if g == nil {
		return nil
	}
	ss := make([]string, 0)
	ss = append(ss, fmt.Sprintf("tick %d", data.Tick))
	ss = append(ss, fmt.Sprintf("alive: %t", !g.GameOver()))
	ss = append(ss, fmt.Sprintf("size: %d x %d", g.Rows(), g.Cols()))
	ss = append(ss, fmt.Sprintf("usage: %.2f", g.Usage()))
	ss = append(ss, fmt.Sprintf("runtime: %s", data.Runtime.Truncate(1*time.Second).String()))
	ss = append(ss, "")
	ss = append(ss, fmt.Sprintf("score: %d", g.Score()))
	ss = append(ss, fmt.Sprintf("length: %d", g.Len()))
	ss = append(ss, fmt.Sprintf("direction: %s", g.Dir()))
	ss = append(ss, fmt.Sprintf("policy: %s", g.Policy()))
	if g.Policy() == snake.PolicyBuffered {
		var sb strings.Builder
		sb.WriteString("pending: [ ")
		for _, d := range g.Pending() {
			sb.WriteString(d.String())
			sb.WriteRune(' ')
		}
		sb.WriteRune(']')
		ss = append(ss, sb.String())
	}
	ss = append(ss, "")
	ss = append(ss, fmt.Sprintf("pilot: %s", data.Pilot))
	if data.HasInput {
		ss = append(ss, fmt.Sprintf("selected: %s (accepted: %t)", data.Input, data.Accepted))
	}
	if data.Reason != "" {
		ss = append(ss, fmt.Sprintf("reason: %s", data.Reason))
	}
	if g.GameOver() {
		ss = append(ss, "")
		ss = append(ss, fmt.Sprintf("game over: %s", g.Reason()))
	}
	return ss
}

// buildResultString returns the one line summary of a finished game.
func buildResultString(g *snake.Game) string {
	if g == nil {
		return "Aborted!"
	}
	if !g.GameOver() {
		return fmt.Sprintf("Stopped! (score %d / length %d / tick %d)", g.Score(), g.Len(), g.Ticks())
	}
	return fmt.Sprintf("Game over! (score %d / length %d / tick %d / %s)", g.Score(), g.Len(), g.Ticks(), g.Reason())
}
