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

// body holds the snake segments, head first. It is a ring buffer sized to the
// grid, so it never needs to grow: every segment occupies a distinct cell.
type body struct {
	buf   []Position
	front int
	n     int
}

func newBody(capacity int) body {
	return body{buf: make([]Position, capacity)}
}

func (b *body) Len() int {
	return b.n
}

// PushFront adds p as the new head. It panics if the buffer is full, which
// would mean two segments share a cell.
func (b *body) PushFront(p Position) {
	if b.n == len(b.buf) {
		panic("snake: body overflow")
	}
	b.front = (b.front - 1 + len(b.buf)) % len(b.buf)
	b.buf[b.front] = p
	b.n++
}

// PopBack removes and returns the tail.
func (b *body) PopBack() Position {
	if b.n == 0 {
		panic("snake: body underflow")
	}
	i := (b.front + b.n - 1) % len(b.buf)
	p := b.buf[i]
	b.n--
	return p
}

func (b *body) Front() Position {
	return b.buf[b.front]
}

func (b *body) Back() Position {
	return b.At(b.n - 1)
}

// At returns the i-th segment counted from the head.
func (b *body) At(i int) Position {
	return b.buf[(b.front+i)%len(b.buf)]
}

// Slice returns a copy of the segments, head first.
func (b *body) Slice() []Position {
	s := make([]Position, b.n)
	for i := range s {
		s[i] = b.At(i)
	}
	return s
}

func (b *body) clone() body {
	nb := body{buf: make([]Position, len(b.buf)), front: b.front, n: b.n}
	copy(nb.buf, b.buf)
	return nb
}
