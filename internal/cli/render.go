package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fkhayef/tripsplit/internal/settlement"
)

// Output formats accepted by --output
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputCSV   = "csv"
)

// Render writes the summary in the requested format
func Render(w io.Writer, format string, s *settlement.Summary) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", OutputTable:
		return renderTable(w, s)
	case OutputJSON:
		return renderJSON(w, s)
	case OutputCSV:
		return renderCSV(w, s)
	default:
		return fmt.Errorf("unknown output format %q (want table, json or csv)", format)
	}
}

func renderTable(w io.Writer, s *settlement.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if s.Trip != nil {
		fmt.Fprintf(tw, "Trip:\t%s (%d days)\n", s.Trip.Name, s.Trip.DurationDays())
	}
	fmt.Fprintf(tw, "Mode:\t%s\n", s.WeightMode)
	fmt.Fprintf(tw, "Total:\t%s\n", s.Total.StringFixed(2))
	fmt.Fprintf(tw, "Participants:\t%d\n", s.ParticipantCount)
	fmt.Fprintf(tw, "Average per person:\t%s\n", s.AveragePerPerson.StringFixed(2))
	fmt.Fprintf(tw, "Total days:\t%d\n", s.TotalDays)
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "PARTICIPANT\tPAID\tEXPECTED\tDIFF\t")
	for _, b := range s.Balances {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n",
			b.DisplayName(), b.Paid.StringFixed(2), b.Expected.StringFixed(2), b.Diff.StringFixed(2))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	if len(s.Settlements) == 0 {
		fmt.Fprintln(w, "Everyone is settled up.")
		return nil
	}

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FROM\tTO\tAMOUNT")
	for _, st := range s.Settlements {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", st.FromName, st.ToName, st.Amount.StringFixed(2))
	}
	return tw.Flush()
}

func renderJSON(w io.Writer, s *settlement.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s.ToResponse())
}

// renderCSV writes one row per balance followed by one row per transfer
func renderCSV(w io.Writer, s *settlement.Summary) error {
	cw := csv.NewWriter(w)

	rows := [][]string{{"kind", "name", "to", "paid", "expected", "diff", "amount"}}
	for _, b := range s.Balances {
		rows = append(rows, []string{
			"balance", b.DisplayName(), "",
			b.Paid.StringFixed(2), b.Expected.StringFixed(2), b.Diff.StringFixed(2), "",
		})
	}
	for _, st := range s.Settlements {
		rows = append(rows, []string{
			"settlement", st.FromName, st.ToName, "", "", "", st.Amount.StringFixed(2),
		})
	}

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}
