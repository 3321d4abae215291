package deck

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (s *ErrorTestSuite) TestNewDeckError() {
	// Setup
	code := ErrEmptyCollection
	message := "deck is empty"

	// Execute
	err := NewDeckError(code, message)

	// Assert
	s.Equal(code, err.Code, "Error code should match")
	s.Equal(message, err.Message, "Error message should match")
}

func (s *ErrorTestSuite) TestErrorString() {
	testCases := []struct {
		name     string
		err      *DeckError
		expected string
	}{
		{
			name:     "Simple error",
			err:      NewDeckError(ErrEmptyCollection, "cannot draw from an empty deck"),
			expected: "EMPTY_COLLECTION: cannot draw from an empty deck",
		},
		{
			name:     "Insufficient cards",
			err:      NewDeckError(ErrInsufficientCards, "not enough cards in the deck: requested 3, have 2"),
			expected: "INSUFFICIENT_CARDS: not enough cards in the deck: requested 3, have 2",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.err.Error(), "Error string should match expected format")
		})
	}
}

func (s *ErrorTestSuite) TestIsDeckError() {
	// Setup
	deckErr := NewDeckError(ErrEmptyCollection, "deck is empty")
	regularErr := errors.New("regular error")

	testCases := []struct {
		name     string
		err      error
		code     ErrorCode
		expected bool
	}{
		{
			name:     "Matching deck error",
			err:      deckErr,
			code:     ErrEmptyCollection,
			expected: true,
		},
		{
			name:     "Non-matching deck error",
			err:      deckErr,
			code:     ErrInvalidArgument,
			expected: false,
		},
		{
			name:     "Deck error wrapped with fmt",
			err:      fmt.Errorf("dealing: %w", deckErr),
			code:     ErrEmptyCollection,
			expected: true,
		},
		{
			name:     "Regular error",
			err:      regularErr,
			code:     ErrEmptyCollection,
			expected: false,
		},
		{
			name:     "Nil error",
			err:      nil,
			code:     ErrEmptyCollection,
			expected: false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			result := IsDeckError(tc.err, tc.code)
			s.Equal(tc.expected, result, "IsDeckError result should match expected value")
		})
	}
}

func (s *ErrorTestSuite) TestAs() {
	// Setup
	deckErr := NewDeckError(ErrInsufficientCards, "not enough cards")
	regularErr := errors.New("regular error")

	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "Deck error",
			err:      deckErr,
			expected: true,
		},
		{
			name:     "Wrapped deck error",
			err:      fmt.Errorf("outer: %w", deckErr),
			expected: true,
		},
		{
			name:     "Regular error",
			err:      regularErr,
			expected: false,
		},
		{
			name:     "Nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			var target *DeckError
			result := As(tc.err, &target)
			s.Equal(tc.expected, result, "As result should match expected value")
			if tc.expected {
				s.Equal(deckErr, target, "Target should be set to the deck error")
			}
		})
	}
}

func (s *ErrorTestSuite) TestAsNilTarget() {
	s.False(As(NewDeckError(ErrEmptyCollection, "empty"), nil))
}
