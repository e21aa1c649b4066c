package quotes

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

//go:embed quotes.csv
var defaultQuotesCsv string

type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
}

type Manager struct {
	Quotes       []*Quote
	GenresQuotes map[string][]*Quote
}

// NewManager reads quotes from a ';' separated CSV with QUOTE;AUTHOR;GENRE records.
func NewManager(quotesCsvReader *csv.Reader) (*Manager, error) {
	qm := &Manager{
		GenresQuotes: make(map[string][]*Quote),
	}

	quotesCsvReader.Comma = ';'
	quotesCsvReader.LazyQuotes = true
	for {
		record, err := quotesCsvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read quotes csv: %w", err)
		}

		if len(record) != 3 {
			return nil, fmt.Errorf("record [%s] does not have 3 elements", record)
		}

		// QUOTE;AUTHOR;GENRE
		quote := &Quote{
			Text:   strings.TrimSpace(record[0]),
			Author: strings.TrimSpace(record[1]),
			Genre:  strings.TrimSpace(record[2]),
		}
		qm.Quotes = append(qm.Quotes, quote)
		qm.GenresQuotes[quote.Genre] = append(qm.GenresQuotes[quote.Genre], quote)
	}

	if len(qm.Quotes) == 0 {
		return nil, fmt.Errorf("no quotes found")
	}

	log.Debugf("quotes CSV read %d quotes", len(qm.Quotes))
	return qm, nil
}

// Load reads quotes from csvPath, or from the embedded set when csvPath is empty.
func Load(csvPath string) (*Manager, error) {
	if csvPath == "" {
		return NewManager(csv.NewReader(strings.NewReader(defaultQuotesCsv)))
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("open quotes csv: %w", err)
	}
	defer f.Close()

	return NewManager(csv.NewReader(f))
}

// PlanGenres are the genres a plan can close with.
var PlanGenres = []string{"fitness", "health", "motivation"}

// RandomQuote picks a quote of one of the PlanGenres, or any quote when the CSV has none of them.
func (qm *Manager) RandomQuote() *Quote {
	var candidates []*Quote
	for _, genre := range PlanGenres {
		candidates = append(candidates, qm.GenresQuotes[genre]...)
	}
	if len(candidates) == 0 {
		candidates = qm.Quotes
	}
	return candidates[rand.Intn(len(candidates))]
}

// Motivational formats a quote as the closing line of a plan.
func Motivational(q *Quote) string {
	return fmt.Sprintf("🌟 *“%s”*", q.Text)
}
