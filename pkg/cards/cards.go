package cards

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/fadedpez/deckcore/pkg/config"
	"github.com/fadedpez/deckcore/pkg/deck"
)

// Suit represents a card suit
type Suit string

const (
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
	Spades   Suit = "♠"
)

// Suits lists every suit in standard deck order
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Rank represents a card rank
type Rank string

const (
	Ace   Rank = "A"
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
)

// Ranks lists every rank from ace to king
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

var red = color.New(color.FgRed)

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// String returns a string representation of the card
func (c Card) String() string {
	return string(c.Suit) + string(c.Rank)
}

// IsRed reports whether the card is a heart or a diamond
func (c Card) IsRed() bool {
	return c.Suit == Hearts || c.Suit == Diamonds
}

// Colored returns the card's string with red suits highlighted for terminals.
// It is identical to String when color output is disabled.
func (c Card) Colored() string {
	if c.IsRed() {
		return red.Sprint(c.String())
	}
	return c.String()
}

// NewStandardDeck creates a 52 card deck, one of each rank and suit, ordered
// by suit then rank from the bottom up
func NewStandardDeck(opts *deck.Options) *deck.Deck[Card] {
	cards := make([]Card, 0, len(Suits)*len(Ranks))
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}

	return deck.NewWithOptions(opts, cards...)
}

// NewStandardDeckFromEnv creates a standard deck whose shuffle seed and log
// level come from the environment and an optional .env file
func NewStandardDeckFromEnv() (*deck.Deck[Card], error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load deck configuration: %w", err)
	}

	return NewStandardDeck(cfg.Options()), nil
}
