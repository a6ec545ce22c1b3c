package notifier

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"max.ks1230/currconv/internal/entity/currency"
)

const alertTitle = "Threshold reached"

type Alert struct {
	ID        uuid.UUID
	Title     string
	Body      string
	Pair      currency.Pair
	Rate      float64
	Threshold float64
	At        time.Time
}

func NewAlert(pair currency.Pair, rate, threshold float64, at time.Time) Alert {
	return Alert{
		ID:        uuid.New(),
		Title:     alertTitle,
		Body:      fmt.Sprintf("%s→%s rate = %.4f (≥ %.4f)", pair.From, pair.To, rate, threshold),
		Pair:      pair,
		Rate:      rate,
		Threshold: threshold,
		At:        at,
	}
}

// Text is the one-line form used by chat-like sinks.
func (a Alert) Text() string {
	return a.Title + ": " + a.Body
}
