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
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msoll.eu/user/msoll/snake"
)

// recordUI counts the calls it receives and provides input channels.
type recordUI struct {
	initialised int
	initErr     error
	rounds      int
	data        int
	finished    []*snake.Game
	input       chan snake.Direction
	done        chan struct{}
}

func newRecordUI() *recordUI {
	return &recordUI{
		input: make(chan snake.Direction),
		done:  make(chan struct{}),
	}
}

func (r *recordUI) Initialise() error               { r.initialised++; return r.initErr }
func (r *recordUI) NewRound(g *snake.Game, tick int) { r.rounds++ }
func (r *recordUI) NewData(data TickData)            { r.data++ }
func (r *recordUI) Finish(g *snake.Game) error {
	r.finished = append(r.finished, g)
	return nil
}
func (r *recordUI) Wait()                         {}
func (r *recordUI) Input() <-chan snake.Direction { return r.input }
func (r *recordUI) Done() <-chan struct{}         { return r.done }

func newTestGame(t *testing.T, opts ...snake.Option) *snake.Game {
	t.Helper()
	g, err := snake.NewGame(5, 6, append([]snake.Option{snake.WithSeed(3)}, opts...)...)
	require.NoError(t, err)
	return g
}

func TestBuildResultString(t *testing.T) {
	assert.Equal(t, "Aborted!", buildResultString(nil))

	g, err := snake.NewGame(1, 4, snake.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, "Stopped! (score 0 / length 3 / tick 0)", buildResultString(g))

	g.Move()
	require.True(t, g.GameOver())
	assert.Equal(t, "Game over! (score 0 / length 3 / tick 1 / wall-collision)", buildResultString(g))
}

func TestBuildGameOverviewStrings(t *testing.T) {
	assert.Nil(t, buildGameOverviewStrings(TickData{}))

	g := newTestGame(t)
	require.True(t, g.ChangeDirection(snake.DirectionUp))

	ss := buildGameOverviewStrings(TickData{Game: g, Tick: 4, Pilot: "greedy", Input: snake.DirectionUp, HasInput: true, Accepted: true, Reason: "shortest way to food"})
	assert.Contains(t, ss, "tick 4")
	assert.Contains(t, ss, "alive: true")
	assert.Contains(t, ss, "size: 5 x 6")
	assert.Contains(t, ss, "length: 3")
	assert.Contains(t, ss, "direction: right")
	assert.Contains(t, ss, "policy: buffered")
	assert.Contains(t, ss, "pending: [ up ]")
	assert.Contains(t, ss, "pilot: greedy")
	assert.Contains(t, ss, "selected: up (accepted: true)")
	assert.Contains(t, ss, "reason: shortest way to food")

	g = newTestGame(t, snake.WithPolicy(snake.PolicyImmediate))
	ss = buildGameOverviewStrings(TickData{Game: g, Pilot: "keyboard"})
	assert.Contains(t, ss, "policy: immediate")
	for _, s := range ss {
		assert.NotContains(t, s, "pending")
		assert.NotContains(t, s, "selected")
	}
}

func TestTeeUI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "print.txt")
	inner := newRecordUI()
	tee := &teeUI{File: path, UI: inner}

	require.NoError(t, tee.Initialise())
	assert.Error(t, tee.Initialise())

	g := newTestGame(t)
	tee.NewRound(g, 0)
	tee.NewData(TickData{Session: "abc", Game: g, Pilot: "keyboard"})
	g.Move()
	tee.NewData(TickData{Session: "abc", Game: g, Tick: 1, Pilot: "keyboard"})
	tee.NewData(TickData{Session: "abc"})
	require.NoError(t, tee.Finish(g))

	assert.Equal(t, 1, inner.initialised)
	assert.Equal(t, 1, inner.rounds)
	assert.Equal(t, 3, inner.data)
	assert.Equal(t, []*snake.Game{g}, inner.finished)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(b)
	assert.Contains(t, content, "Tick 0 - Session: abc")
	assert.Contains(t, content, "Tick 1 - Session: abc")
	assert.Contains(t, content, g.PrintGame(false))
	assert.Contains(t, content, buildResultString(g))
}

func TestTeeUIWithoutInner(t *testing.T) {
	path := filepath.Join(t.TempDir(), "print.txt")
	tee := &teeUI{File: path}

	require.NoError(t, tee.Initialise())
	require.NoError(t, tee.Finish(nil))
	tee.Wait()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Aborted!")
}

func TestTeeUIInnerFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "print.txt")
	inner := newRecordUI()
	inner.initErr = errors.New("no terminal")
	tee := &teeUI{File: path, UI: inner}

	require.ErrorIs(t, tee.Initialise(), inner.initErr)
	assert.Nil(t, tee.f)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// a failed start can be retried
	inner.initErr = nil
	require.NoError(t, tee.Initialise())
	require.NoError(t, tee.Finish(nil))
}

func TestTerminalUIWithoutTerminal(t *testing.T) {
	t.Setenv("TERM", "no-such-term")

	tui := new(terminalUI)
	require.Error(t, tui.Initialise())
	require.NoError(t, tui.Finish(nil))

	waited := make(chan struct{})
	go func() {
		tui.Wait()
		close(waited)
	}()
	select {
	case <-waited:
	case <-time.After(time.Second):
		t.Fatal("Wait blocked after a failed Initialise")
	}

	select {
	case <-tui.Done():
	default:
		t.Fatal("Done not closed after a failed Initialise")
	}
}

func TestTeeUIBadPath(t *testing.T) {
	tee := &teeUI{File: filepath.Join(t.TempDir(), "missing", "print.txt")}
	assert.Error(t, tee.Initialise())
}

func TestResultUI(t *testing.T) {
	g, err := snake.NewGame(1, 4, snake.WithSeed(1))
	require.NoError(t, err)
	g.Move()

	path := filepath.Join(t.TempDir(), "result.txt")
	inner := newRecordUI()
	r := &resultUI{File: path, UI: inner}
	require.NoError(t, r.Initialise())
	r.NewRound(g, 1)
	r.NewData(TickData{Game: g, Tick: 1})
	require.NoError(t, r.Finish(g))

	assert.Equal(t, 1, inner.rounds)
	assert.Equal(t, 1, inner.data)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "score: 0\nlength: 3\nticks: 1\nreason: wall-collision\n", string(b))
}

func TestResultUIAborted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.txt")
	r := &resultUI{File: path}
	require.NoError(t, r.Initialise())
	require.NoError(t, r.Finish(nil))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "aborted\n", string(b))
}

func TestResultUINotInitialised(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.txt")
	r := &resultUI{File: path}
	require.NoError(t, r.Finish(nil))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestInputOf(t *testing.T) {
	in, done := inputOf(quietUI{})
	assert.Nil(t, in)
	assert.Nil(t, done)

	in, done = inputOf(cmdUI{})
	assert.Nil(t, in)
	assert.Nil(t, done)

	inner := newRecordUI()
	var ui UI = &resultUI{UI: &teeUI{UI: inner}}
	in, done = inputOf(ui)

	go func() {
		inner.input <- snake.DirectionLeft
		close(inner.done)
	}()
	assert.Equal(t, snake.DirectionLeft, <-in)
	<-done

	in, done = inputOf(&teeUI{UI: quietUI{}})
	assert.Nil(t, in)
	assert.Nil(t, done)
}
