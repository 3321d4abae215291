// Package deck provides an ordered, mutable collection of cards.
//
// Index 0 of a Deck is its bottom and the highest index is its top; draws
// always take from the top. A Deck is not safe for concurrent use.
package deck

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Deck represents an ordered collection of cards. Duplicates are permitted.
type Deck[C comparable] struct {
	cards []C
	opts  *Options
}

// New creates a deck holding the given cards, bottom to top in argument order
func New[C comparable](cards ...C) *Deck[C] {
	return NewWithOptions(nil, cards...)
}

// NewWithOptions creates a deck that shuffles with opts.Rand and traces to
// opts.Logger. Unset options fall back to NewOptions defaults.
func NewWithOptions[C comparable](opts *Options, cards ...C) *Deck[C] {
	return &Deck[C]{
		cards: slices.Clone(cards),
		opts:  opts.withDefaults(),
	}
}

// Add places each card on top of the deck in argument order
func (d *Deck[C]) Add(cards ...C) {
	d.cards = append(d.cards, cards...)
	if len(cards) > 0 {
		d.options().Logger.Debug("added %d card(s), deck size %d", len(cards), len(d.cards))
	}
}

// Remove removes the first occurrence of each card, in argument order.
// Cards that are not in the deck are ignored.
func (d *Deck[C]) Remove(cards ...C) {
	for _, card := range cards {
		if i := slices.Index(d.cards, card); i >= 0 {
			d.cards = slices.Delete(d.cards, i, i+1)
			d.options().Logger.Debug("removed %v at index %d, deck size %d", card, i, len(d.cards))
		}
	}
}

// Draw removes and returns the top card
func (d *Deck[C]) Draw() (C, error) {
	var card C
	if len(d.cards) == 0 {
		return card, NewDeckError(ErrEmptyCollection, "cannot draw from an empty deck")
	}

	top := len(d.cards) - 1
	card = d.cards[top]
	var zero C
	d.cards[top] = zero
	d.cards = d.cards[:top]

	d.options().Logger.Debug("drew %v, deck size %d", card, len(d.cards))
	return card, nil
}

// DrawN removes the top n cards and returns them as a new deck that keeps
// their relative order, so the old top card is the new deck's top card.
// The deck is left untouched when an error is returned.
func (d *Deck[C]) DrawN(n int) (*Deck[C], error) {
	if n < 1 {
		return nil, NewDeckError(ErrInvalidArgument, fmt.Sprintf("must draw at least 1 card, got %d", n))
	}
	if n > len(d.cards) {
		return nil, NewDeckError(ErrInsufficientCards,
			fmt.Sprintf("not enough cards in the deck: requested %d, have %d", n, len(d.cards)))
	}

	split := len(d.cards) - n
	drawn := &Deck[C]{
		cards: slices.Clone(d.cards[split:]),
		opts:  d.options(),
	}
	clear(d.cards[split:])
	d.cards = d.cards[:split]

	d.options().Logger.Debug("drew %d card(s), deck size %d", n, len(d.cards))
	return drawn, nil
}

// options returns the deck's options, filling in defaults for a zero Deck
func (d *Deck[C]) options() *Options {
	if d.opts == nil {
		d.opts = (*Options)(nil).withDefaults()
	}
	return d.opts
}

// IsEmpty returns true if the deck holds no cards
func (d *Deck[C]) IsEmpty() bool {
	return len(d.cards) == 0
}

// Len returns the number of cards in the deck
func (d *Deck[C]) Len() int {
	return len(d.cards)
}

// Shuffle swaps the card at every index with the card at an index chosen
// from the whole deck. The partner index is drawn from [0, len) on every
// step rather than from the unshuffled suffix, so permutations are not
// equally likely.
func (d *Deck[C]) Shuffle() {
	rnd := d.options().Rand
	for i := 0; i < len(d.cards); i++ {
		r := rnd.Intn(len(d.cards))
		d.cards[i], d.cards[r] = d.cards[r], d.cards[i]
	}
	d.options().Logger.Debug("shuffled %d card(s)", len(d.cards))
}

// String returns the cards bottom to top, e.g. "[♥A, ♠10]"
func (d *Deck[C]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, card := range d.cards {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", card)
	}
	sb.WriteString("]")
	return sb.String()
}

// All returns an iterator over the cards from bottom to top. Each call
// starts a fresh pass. The deck must not be modified while iterating.
func (d *Deck[C]) All() iter.Seq[C] {
	return func(yield func(C) bool) {
		for _, card := range d.cards {
			if !yield(card) {
				return
			}
		}
	}
}

// Cards returns a copy of the deck's cards, bottom to top
func (d *Deck[C]) Cards() []C {
	return slices.Clone(d.cards)
}
