package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree around a.
func NewRootCmd(a *App) *cobra.Command {
	var (
		addr        string
		keyFile     string
		journalFile string
		timeout     time.Duration
	)

	root := &cobra.Command{
		Use:           "tokenlocker",
		Short:         "tokenlocker locks tokens in custody until a chosen time",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Flags given on the command line win over the JSON file.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.config.LoadJSON(a.configPath); err != nil {
				return err
			}
			f := cmd.Flags()
			if f.Changed("addr") {
				a.config.ServerEndpointAddr = addr
			}
			if f.Changed("key") {
				a.config.KeyFile = keyFile
			}
			if f.Changed("journal") {
				a.config.JournalFile = journalFile
			}
			if f.Changed("timeout") {
				a.config.RequestTimeout = timeout
			}
			switch a.output {
			case outputAuto, outputText, outputJSON:
				return nil
			default:
				return fmt.Errorf("invalid --output %q (expected auto, text or json)", a.output)
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "path to JSON config file")
	pf.StringVarP(&addr, "addr", "a", a.config.ServerEndpointAddr, "address and port of the server")
	pf.StringVarP(&keyFile, "key", "k", a.config.KeyFile, "wallet key file")
	pf.StringVar(&journalFile, "journal", a.config.JournalFile, "local journal database, empty to disable")
	pf.DurationVarP(&timeout, "timeout", "t", a.config.RequestTimeout, "per-request timeout")
	pf.StringVarP(&a.output, "output", "o", outputAuto, "output format: auto, text or json")

	root.AddCommand(
		newKeygenCmd(a),
		newAddressCmd(a),
		newDepositCmd(a),
		newWithdrawCmd(a),
		newWithdrawEarlyCmd(a),
		newPositionCmd(a),
		newStatsCmd(a),
		newCustodyCmd(a),
		newFaucetCmd(a),
		newHistoryCmd(a),
		newPingCmd(a),
	)
	return root
}
