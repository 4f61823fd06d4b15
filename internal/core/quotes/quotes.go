package quotes

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"io"
	"math/rand/v2"
	"strings"
	"sync"
)

var ErrNoQuotes = errors.New("no quotes loaded")

//go:embed assets/quotes.txt
var defaultQuotes []byte

type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

type QuoteStore struct {
	mu     sync.Mutex
	quotes []Quote
	intn   func(n int) int
}

// Default returns a store filled with the bundled quotes.
func Default() *QuoteStore {
	s := NewQuoteStore(rand.IntN)
	if err := s.Load(bytes.NewReader(defaultQuotes)); err != nil {
		panic("quotes: bundled asset is invalid: " + err.Error())
	}
	return s
}

// NewQuoteStore creates an empty store; intn picks an index in [0, n).
func NewQuoteStore(intn func(n int) int) *QuoteStore {
	if intn == nil {
		intn = rand.IntN
	}
	return &QuoteStore{intn: intn}
}

// Load reads one quote per line as "text|author". Blank lines and lines
// starting with # are skipped; a missing author becomes "Unknown".
func (s *QuoteStore) Load(r io.Reader) error {
	var loaded []Quote

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		text, author, _ := strings.Cut(line, "|")
		q := Quote{Text: strings.TrimSpace(text), Author: strings.TrimSpace(author)}
		if q.Author == "" {
			q.Author = "Unknown"
		}
		loaded = append(loaded, q)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if len(loaded) == 0 {
		return ErrNoQuotes
	}

	s.mu.Lock()
	s.quotes = append(s.quotes, loaded...)
	s.mu.Unlock()
	return nil
}

func (s *QuoteStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.quotes)
}

// Random picks a quote uniformly.
func (s *QuoteStore) Random() (Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.quotes) == 0 {
		return Quote{}, ErrNoQuotes
	}
	return s.quotes[s.intn(len(s.quotes))], nil
}
