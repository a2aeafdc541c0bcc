package storage

import (
	"sync"
	"testing"
)

func TestBoardSaveAndRetrieve(t *testing.T) {
	b := NewBoard()

	b.SaveScore("alice", 100)
	b.SaveScore("bob", 50)
	b.SaveScore("carol", 200)

	top := b.TopScores(10)
	if len(top) != 3 {
		t.Fatalf("TopScores returned %d entries, want 3", len(top))
	}
	if top[0].Score != 200 || top[0].Player != "carol" {
		t.Errorf("top entry = %+v, want carol/200", top[0])
	}
	if top[2].Score != 50 {
		t.Errorf("last entry score = %d, want 50", top[2].Score)
	}

	if got := b.HighScore(); got != 200 {
		t.Errorf("HighScore = %d, want 200", got)
	}
}

func TestBoardEmptyHighScore(t *testing.T) {
	b := NewBoard()

	if got := b.HighScore(); got != 0 {
		t.Errorf("HighScore on empty board = %d, want 0", got)
	}
	if got := b.TopScores(5); len(got) != 0 {
		t.Errorf("TopScores on empty board returned %d entries", len(got))
	}
}

func TestBoardTopScoresLimit(t *testing.T) {
	b := NewBoard()
	for i := 0; i < 20; i++ {
		b.SaveScore("p", i)
	}

	top := b.TopScores(5)
	if len(top) != 5 {
		t.Fatalf("TopScores(5) returned %d entries", len(top))
	}
	if top[0].Score != 19 {
		t.Errorf("best score = %d, want 19", top[0].Score)
	}
}

func TestBoardCapacity(t *testing.T) {
	b := NewBoard()
	for i := 0; i < DefaultCapacity+50; i++ {
		b.SaveScore("p", i)
	}

	if got := b.Len(); got != DefaultCapacity {
		t.Errorf("Len = %d, want %d", got, DefaultCapacity)
	}
	// The lowest scores were the ones dropped
	top := b.TopScores(DefaultCapacity)
	if top[len(top)-1].Score != 50 {
		t.Errorf("lowest retained score = %d, want 50", top[len(top)-1].Score)
	}
}

func TestBoardConcurrentSaves(t *testing.T) {
	b := NewBoard()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				b.SaveScore("p", n*10+j)
				b.TopScores(5)
				b.HighScore()
			}
		}(i)
	}
	wg.Wait()

	if got := b.Len(); got != 100 {
		t.Errorf("Len after concurrent saves = %d, want 100", got)
	}
}
