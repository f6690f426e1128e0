package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/fkhayef/tripsplit/internal/balance"
	"github.com/fkhayef/tripsplit/internal/participant"
	"github.com/fkhayef/tripsplit/internal/payment"
	"github.com/fkhayef/tripsplit/internal/trip"
)

// TripFile is the YAML description of a trip read by `tripsplit settle`.
//
//	name: Lisbon
//	start_date: 2026-05-01
//	end_date: 2026-05-05
//	participants:
//	  - name: Alice
//	    nickname: Al
//	    days: 3
//	  - name: Bob
//	payments:
//	  - payer: Al
//	    amount: 120.50
//	    description: Dinner
type TripFile struct {
	Name         string            `yaml:"name"`
	StartDate    string            `yaml:"start_date"`
	EndDate      string            `yaml:"end_date"`
	Participants []ParticipantFile `yaml:"participants"`
	Payments     []PaymentFile     `yaml:"payments"`
}

// ParticipantFile is one participant entry in a trip file
type ParticipantFile struct {
	Name     string `yaml:"name"`
	Nickname string `yaml:"nickname"`
	Days     *int   `yaml:"days"` // Omitted means the whole trip
}

// PaymentFile is one payment entry in a trip file. Payer matches a
// participant's name or nickname.
type PaymentFile struct {
	Payer       string          `yaml:"payer"`
	Amount      decimal.Decimal `yaml:"amount"`
	Description string          `yaml:"description"`
}

// Trip file errors
var (
	ErrNoParticipants       = errors.New("trip file lists no participants")
	ErrDuplicateParticipant = errors.New("duplicate participant")
	ErrUnknownPayer         = errors.New("payer is not a participant")
	ErrInvalidAmount        = errors.New("payment amount must be greater than zero")
)

// LoadTripFile decodes a trip file, rejecting unknown keys
func LoadTripFile(r io.Reader) (*TripFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var tf TripFile
	if err := dec.Decode(&tf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("trip file is empty")
		}
		return nil, fmt.Errorf("failed to parse trip file: %w", err)
	}
	return &tf, nil
}

// Domain converts the file into the records the summary builder works on.
// Participant IDs are derived from position and name so output is stable
// between runs.
func (tf *TripFile) Domain() (*trip.Trip, []*participant.Participant, []*payment.Payment, error) {
	if len(tf.Participants) == 0 {
		return nil, nil, nil, ErrNoParticipants
	}

	start, err := parseFileDate("start_date", tf.StartDate)
	if err != nil {
		return nil, nil, nil, err
	}
	end, err := parseFileDate("end_date", tf.EndDate)
	if err != nil {
		return nil, nil, nil, err
	}

	t := &trip.Trip{
		ID:        uuid.NewSHA1(uuid.NameSpaceOID, []byte("trip:"+tf.Name)),
		Name:      tf.Name,
		StartDate: start,
		EndDate:   end,
	}

	participants := make([]*participant.Participant, len(tf.Participants))
	byName := make(map[string]uuid.UUID, len(tf.Participants)*2)
	for i, pf := range tf.Participants {
		name := strings.TrimSpace(pf.Name)
		if name == "" {
			return nil, nil, nil, fmt.Errorf("participant %d: name is required", i+1)
		}

		p := &participant.Participant{
			ID:         uuid.NewSHA1(t.ID, []byte(fmt.Sprintf("%d:%s", i, name))),
			TripID:     t.ID,
			Name:       name,
			DaysInTrip: pf.Days,
		}
		if nick := strings.TrimSpace(pf.Nickname); nick != "" {
			p.Nickname = &nick
		}

		keys := []string{name}
		if nick := p.NicknameOrEmpty(); nick != "" && !strings.EqualFold(nick, name) {
			keys = append(keys, nick)
		}
		for _, key := range keys {
			k := strings.ToLower(key)
			if _, dup := byName[k]; dup {
				return nil, nil, nil, fmt.Errorf("%w: %s", ErrDuplicateParticipant, key)
			}
			byName[k] = p.ID
		}
		participants[i] = p
	}

	payments := make([]*payment.Payment, len(tf.Payments))
	for i, pf := range tf.Payments {
		payerID, ok := byName[strings.ToLower(strings.TrimSpace(pf.Payer))]
		if !ok {
			return nil, nil, nil, fmt.Errorf("payment %d: %w: %q", i+1, ErrUnknownPayer, pf.Payer)
		}

		amount := balance.RoundMoney(pf.Amount)
		if !amount.IsPositive() {
			return nil, nil, nil, fmt.Errorf("payment %d: %w", i+1, ErrInvalidAmount)
		}

		p := &payment.Payment{
			ID:       uuid.NewSHA1(t.ID, []byte(fmt.Sprintf("payment:%d", i))),
			TripID:   t.ID,
			PaidByID: payerID,
			Amount:   amount,
		}
		if desc := strings.TrimSpace(pf.Description); desc != "" {
			p.Description = &desc
		}
		payments[i] = p
	}

	return t, participants, payments, nil
}

func parseFileDate(field, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if d, err := time.Parse("2006-01-02", value); err == nil {
		return &d, nil
	}
	d, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("%s: dates must be formatted as YYYY-MM-DD", field)
	}
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return &day, nil
}
