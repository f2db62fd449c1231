package poker

import (
	"math/rand"
	"testing"
)

func TestNewDeckHas52Cards(t *testing.T) {
	t.Parallel()

	d := NewDeck(rand.New(rand.NewSource(1)))
	if d.Remaining() != 52 {
		t.Errorf("Expected 52 cards, got %d", d.Remaining())
	}
}

func TestShortDeckHas36Cards(t *testing.T) {
	t.Parallel()

	d := NewShortDeck(rand.New(rand.NewSource(1)))
	if d.Remaining() != 36 {
		t.Errorf("Expected 36 cards, got %d", d.Remaining())
	}

	for _, s := range []string{"2c", "3d", "4h", "5s"} {
		c, _ := ParseCard(s)
		if d.Contains(c) {
			t.Errorf("Short deck should not contain %s", s)
		}
	}
	six, _ := ParseCard("6c")
	if !d.Contains(six) {
		t.Error("Short deck should contain 6c")
	}
}

func TestDeckDraw(t *testing.T) {
	t.Parallel()

	d := NewDeck(rand.New(rand.NewSource(1)))
	cards, err := d.Draw(5)
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if len(cards) != 5 {
		t.Fatalf("Expected 5 cards, got %d", len(cards))
	}
	if d.Remaining() != 47 {
		t.Errorf("Expected 47 remaining, got %d", d.Remaining())
	}

	// Drawn cards are gone
	for _, c := range cards {
		if d.Contains(c) {
			t.Errorf("Drawn card %s still in deck", c)
		}
	}

	if _, err := d.Draw(48); err == nil {
		t.Error("Overdraw should fail")
	}
}

func TestDeckDrawDeterministic(t *testing.T) {
	t.Parallel()

	d1 := NewDeck(rand.New(rand.NewSource(42)))
	d2 := NewDeck(rand.New(rand.NewSource(42)))

	c1, _ := d1.Draw(10)
	c2, _ := d2.Draw(10)
	for i := range c1 {
		if c1[i] != c2[i] {
			t.Fatalf("Same seed should draw same cards, got %s vs %s at %d", c1[i], c2[i], i)
		}
	}
}

func TestDeckTake(t *testing.T) {
	t.Parallel()

	d := NewDeck(rand.New(rand.NewSource(1)))
	cards, _ := ParseCards("AcAsKc")

	if err := d.Take(cards...); err != nil {
		t.Fatalf("Take failed: %v", err)
	}
	if d.Remaining() != 49 {
		t.Errorf("Expected 49 remaining, got %d", d.Remaining())
	}
	for _, c := range cards {
		if d.Contains(c) {
			t.Errorf("Taken card %s still in deck", c)
		}
	}

	// Taking the same card twice fails
	if err := d.Take(cards[0]); err == nil {
		t.Error("Taking a removed card should fail")
	}

	// A duplicate inside one request fails too
	d2 := NewDeck(rand.New(rand.NewSource(1)))
	qd, _ := ParseCard("Qd")
	if err := d2.Take(qd, qd); err == nil {
		t.Error("Taking a duplicate card should fail")
	}
}
