package cli

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/tripsplit/internal/settlement"
)

func lisbonSummary(t *testing.T) *settlement.Summary {
	t.Helper()

	tf, err := LoadTripFile(strings.NewReader(lisbonYAML))
	require.NoError(t, err)
	tr, participants, payments, err := tf.Domain()
	require.NoError(t, err)

	return settlement.BuildSummary(tr, participants, payments, &settlement.DaysStrategy{})
}

func TestRender_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "table", lisbonSummary(t)))

	out := buf.String()
	assert.Contains(t, out, "Lisbon (3 days)")
	assert.Contains(t, out, "40.00")
	assert.Contains(t, out, "PARTICIPANT")
	assert.Contains(t, out, "FROM")
	assert.Regexp(t, `Ana\s+Ben\s+5\.00`, out)
}

func TestRender_TableSettled(t *testing.T) {
	tf := &TripFile{Participants: []ParticipantFile{{Name: "Solo"}}}
	tr, participants, payments, err := tf.Domain()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "", settlement.BuildSummary(tr, participants, payments, &settlement.EvenStrategy{})))
	assert.Contains(t, buf.String(), "Everyone is settled up.")
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "JSON", lisbonSummary(t)))

	var resp settlement.SummaryResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, settlement.WeightModeDays, resp.WeightMode)
	assert.Equal(t, 4, resp.TotalDays)
	require.Len(t, resp.Settlements, 1)
	assert.InDelta(t, 5.0, resp.Settlements[0].Amount, 1e-9)
}

func TestRender_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "csv", lisbonSummary(t)))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"kind", "name", "to", "paid", "expected", "diff", "amount"}, rows[0])
	assert.Equal(t, []string{"balance", "Ana", "", "25.00", "30.00", "-5.00", ""}, rows[1])
	assert.Equal(t, []string{"balance", "Ben", "", "15.00", "10.00", "5.00", ""}, rows[2])
	assert.Equal(t, []string{"settlement", "Ana", "Ben", "", "", "", "5.00"}, rows[3])
}

func TestRender_UnknownFormat(t *testing.T) {
	err := Render(&bytes.Buffer{}, "xml", lisbonSummary(t))
	assert.ErrorContains(t, err, "unknown output format")
}
