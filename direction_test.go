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

package snake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Direction
	}{
		{DirectionUp, DirectionDown},
		{DirectionDown, DirectionUp},
		{DirectionLeft, DirectionRight},
		{DirectionRight, DirectionLeft},
	}
	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.dir.Opposite())
			assert.Equal(t, tc.dir, tc.dir.Opposite().Opposite())
		})
	}
}

func TestTranslate(t *testing.T) {
	p := Position{Row: 2, Col: 2}
	tests := []struct {
		dir  Direction
		want Position
	}{
		{DirectionUp, Position{Row: 1, Col: 2}},
		{DirectionDown, Position{Row: 3, Col: 2}},
		{DirectionLeft, Position{Row: 2, Col: 1}},
		{DirectionRight, Position{Row: 2, Col: 3}},
		{Direction(9), p},
	}
	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, p.Translate(tc.dir))
		})
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, err := ParseDirection(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	got, err := ParseDirection(" UP ")
	require.NoError(t, err)
	assert.Equal(t, DirectionUp, got)

	_, err = ParseDirection("north")
	assert.Error(t, err)
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("immediate")
	require.NoError(t, err)
	assert.Equal(t, PolicyImmediate, p)

	p, err = ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyBuffered, p)

	_, err = ParsePolicy("queued")
	assert.Error(t, err)
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 7, Position{Row: 1, Col: 5}.Distance(Position{Row: 4, Col: 1}))
	assert.Equal(t, 0, Position{Row: 3, Col: 3}.Distance(Position{Row: 3, Col: 3}))
}

func TestBodyWrapsAround(t *testing.T) {
	b := newBody(3)
	b.PushFront(Position{Row: 0, Col: 0})
	b.PushFront(Position{Row: 0, Col: 1})
	b.PushFront(Position{Row: 0, Col: 2})
	assert.Panics(t, func() { b.PushFront(Position{Row: 9, Col: 9}) })

	for i := 3; i < 10; i++ {
		assert.Equal(t, Position{Row: 0, Col: i - 3}, b.PopBack())
		b.PushFront(Position{Row: 0, Col: i})
		assert.Equal(t, 3, b.Len())
		assert.Equal(t, Position{Row: 0, Col: i}, b.Front())
		assert.Equal(t, Position{Row: 0, Col: i - 2}, b.Back())
	}
	assert.Equal(t, []Position{{0, 9}, {0, 8}, {0, 7}}, b.Slice())

	c := b.clone()
	c.PopBack()
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, 2, c.Len())

	b.PopBack()
	b.PopBack()
	b.PopBack()
	assert.Panics(t, func() { b.PopBack() })
}
