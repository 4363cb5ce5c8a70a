package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/tokenlocker/internal/client/models"
)

const (
	outputAuto = "auto"
	outputText = "text"
	outputJSON = "json"
)

func (a *App) jsonOutput() bool {
	switch a.output {
	case outputJSON:
		return true
	case outputText:
		return false
	default:
		return !a.isTerminal()
	}
}

// print writes v as indented JSON, or calls text for a terminal.
func (a *App) print(v any, text func(w io.Writer)) error {
	if a.jsonOutput() {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(a.out)
	return nil
}

func formatUnix(ts int64) string {
	if ts == 0 {
		return "-"
	}
	return time.Unix(ts, 0).UTC().Format(time.RFC3339)
}

func printPosition(w io.Writer, p *models.Position) {
	if p == nil {
		return
	}
	fmt.Fprintf(w, "owner:       %s\n", p.Owner)
	fmt.Fprintf(w, "asset:       %s\n", p.Asset)
	fmt.Fprintf(w, "amount:      %d\n", p.Amount)
	fmt.Fprintf(w, "lock start:  %s\n", formatUnix(p.LockStart))
	fmt.Fprintf(w, "lock end:    %s\n", formatUnix(p.LockEnd))
	fmt.Fprintf(w, "early exit:  %t\n", p.EarlyWithdrawalAllowed)
}

func printStats(w io.Writer, s *models.UserStats) {
	if s == nil {
		return
	}
	fmt.Fprintf(w, "owner:          %s\n", s.Owner)
	fmt.Fprintf(w, "deposits:       %d\n", s.TotalDepositsCount)
	fmt.Fprintf(w, "locked volume:  %d\n", s.TotalLockedVolume)
	fmt.Fprintf(w, "last activity:  %s\n", formatUnix(s.LastActivityTime))
}
