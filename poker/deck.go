package poker

import (
	"fmt"
	"math/rand"
)

// Deck is a multiset of remaining cards. Cards leave the deck either by
// random draws or by explicit removal, so a caller can dictate exact
// deals while everything else stays shuffled.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a shuffled 52-card deck using the given RNG
func NewDeck(rng *rand.Rand) *Deck {
	return newDeck(rng, Two)
}

// NewShortDeck creates a shuffled 36-card deck (ranks six through ace)
func NewShortDeck(rng *rand.Rand) *Deck {
	return newDeck(rng, Six)
}

func newDeck(rng *rand.Rand, lowRank uint8) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}

	for suit := uint8(0); suit < 4; suit++ {
		for rank := lowRank; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}

	d.Shuffle()
	return d
}

// Shuffle shuffles the remaining cards using Fisher-Yates
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.Intn(i + 1)
		} else {
			j = rand.Intn(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns n cards from the top of the deck
func (d *Deck) Draw(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, fmt.Errorf("cannot draw %d cards, %d remaining", n, len(d.cards))
	}
	cards := make([]Card, n)
	copy(cards, d.cards[:n])
	d.cards = d.cards[n:]
	return cards, nil
}

// Take removes the specified cards from the deck wherever they sit.
// It fails without removing anything if any card is not present.
func (d *Deck) Take(cards ...Card) error {
	remaining := NewHand(d.cards...)
	for _, c := range cards {
		if !remaining.HasCard(c) {
			return fmt.Errorf("card %s is not in the deck", c)
		}
		remaining &^= Hand(c)
	}

	kept := d.cards[:0]
	taken := NewHand(cards...)
	for _, c := range d.cards {
		if !taken.HasCard(c) {
			kept = append(kept, c)
		}
	}
	d.cards = kept
	return nil
}

// Contains reports whether the card is still in the deck
func (d *Deck) Contains(c Card) bool {
	return NewHand(d.cards...).HasCard(c)
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}
