package searcher

import (
	"iter"
	"slices"
)

// mockNode is a hand-built game tree. Moves are child indices.
type mockNode struct {
	value    int
	sameSide bool // The side that moved into this node moves again
	children []*mockNode
}

func leaf(value int) *mockNode {
	return &mockNode{value: value}
}

func branch(value int, children ...*mockNode) *mockNode {
	return &mockNode{value: value, children: children}
}

type mockState struct {
	node    *mockNode
	aToMove bool
	played  []int
	flags   *[]bool // asOpponent of every applied move, shared between clones
}

func newMockState(root *mockNode) *mockState {
	return &mockState{node: root, aToMove: true, flags: &[]bool{}}
}

func (s *mockState) PossibleMoves() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range s.node.children {
			if !yield(i) {
				return
			}
		}
	}
}

func (s *mockState) ApplyMove(move int, asOpponent bool) bool {
	*s.flags = append(*s.flags, asOpponent)
	s.node = s.node.children[move]
	s.played = append(s.played, move)
	if !s.node.sameSide {
		s.aToMove = !s.aToMove
	}
	return s.aToMove
}

func (s *mockState) Heuristic() int {
	return s.node.value
}

func (s *mockState) Clone() *mockState {
	c := *s
	c.played = slices.Clone(s.played)
	return &c
}
