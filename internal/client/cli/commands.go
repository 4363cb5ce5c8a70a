package cli

import (
	"context"
	"crypto/ed25519"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/tokenlocker/internal/client/keystore"
	"github.com/dmitrijs2005/tokenlocker/internal/client/repositories/journal"
	"github.com/dmitrijs2005/tokenlocker/internal/cryptox"
	"github.com/dmitrijs2005/tokenlocker/internal/pubkey"
)

const (
	opDeposit       = "deposit"
	opWithdraw      = "withdraw"
	opWithdrawEarly = "withdraw_early"
	opFaucet        = "faucet"
)

var errJournalDisabled = errors.New("journal is disabled (empty journal_file)")

type keyInfo struct {
	Address pubkey.Address `json:"address"`
	KeyFile string         `json:"key_file"`
}

func newKeygenCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Create a new wallet key sealed under a passphrase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := keystore.Generate()
			if err != nil {
				return err
			}
			pw, err := a.newPassphrase()
			if err != nil {
				return err
			}
			defer cryptox.Wipe(pw)
			if err := keystore.Save(a.config.KeyFile, key, pw); err != nil {
				return err
			}
			info := keyInfo{Address: keystore.Address(key), KeyFile: a.config.KeyFile}
			return a.print(info, func(w io.Writer) {
				fmt.Fprintf(w, "Wallet %s saved to %s\n", info.Address, info.KeyFile)
			})
		},
	}
}

func newAddressCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "address",
		Short: "Show the wallet address of the key file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := keystore.Peek(a.config.KeyFile)
			if err != nil {
				return err
			}
			info := keyInfo{Address: addr, KeyFile: a.config.KeyFile}
			return a.print(info, func(w io.Writer) { fmt.Fprintln(w, addr) })
		},
	}
}

func newDepositCmd(a *App) *cobra.Command {
	var (
		duration time.Duration
		early    bool
	)
	cmd := &cobra.Command{
		Use:   "deposit <asset> <amount>",
		Short: "Lock tokens for a duration, or top up an existing lock",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			asset, err := parseAddress("asset", args[0])
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			return a.signed(cmd.Context(), opDeposit, func(ctx context.Context, l Locker) (*journal.Entry, error) {
				resp, err := l.Deposit(ctx, asset, amount, duration, early)
				if err != nil {
					return nil, err
				}
				e := &journal.Entry{Asset: asset, Amount: amount}
				if resp.Position != nil {
					e.LockEnd = resp.Position.LockEnd
				}
				return e, a.print(resp, func(w io.Writer) {
					fmt.Fprintf(w, "Locked %d, escrow %s\n", amount, resp.Escrow)
					printPosition(w, resp.Position)
				})
			})
		},
	}
	cmd.Flags().DurationVarP(&duration, "duration", "d", 0, "lock duration, e.g. 720h")
	cmd.Flags().BoolVar(&early, "early", false, "allow early withdrawal with a penalty")
	_ = cmd.MarkFlagRequired("duration")
	return cmd
}

func newWithdrawCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw <asset>",
		Short: "Withdraw a matured lock in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asset, err := parseAddress("asset", args[0])
			if err != nil {
				return err
			}
			return a.signed(cmd.Context(), opWithdraw, func(ctx context.Context, l Locker) (*journal.Entry, error) {
				resp, err := l.WithdrawMature(ctx, asset)
				if err != nil {
					return nil, err
				}
				e := &journal.Entry{Asset: asset, Payout: resp.Payout}
				return e, a.print(resp, func(w io.Writer) {
					fmt.Fprintf(w, "Withdrew %d\n", resp.Payout)
				})
			})
		},
	}
}

func newWithdrawEarlyCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw-early <asset>",
		Short: "Withdraw before maturity, burning the penalty",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asset, err := parseAddress("asset", args[0])
			if err != nil {
				return err
			}
			return a.signed(cmd.Context(), opWithdrawEarly, func(ctx context.Context, l Locker) (*journal.Entry, error) {
				resp, err := l.WithdrawEarly(ctx, asset)
				if err != nil {
					return nil, err
				}
				e := &journal.Entry{Asset: asset, Payout: resp.Payout, Penalty: resp.Penalty}
				return e, a.print(resp, func(w io.Writer) {
					fmt.Fprintf(w, "Withdrew %d, penalty %d burned\n", resp.Payout, resp.Penalty)
				})
			})
		},
	}
}

func newPositionCmd(a *App) *cobra.Command {
	var owner string
	cmd := &cobra.Command{
		Use:   "position <asset>",
		Short: "Show a lock position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asset, err := parseAddress("asset", args[0])
			if err != nil {
				return err
			}
			who, err := a.owner(owner)
			if err != nil {
				return err
			}
			return a.public(cmd.Context(), func(ctx context.Context, l Locker) error {
				p, err := l.Position(ctx, who, asset)
				if err != nil {
					return err
				}
				return a.print(p, func(w io.Writer) { printPosition(w, p) })
			})
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "owner address (default: wallet of the key file)")
	return cmd
}

func newStatsCmd(a *App) *cobra.Command {
	var owner string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show lifetime deposit statistics of a wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			who, err := a.owner(owner)
			if err != nil {
				return err
			}
			return a.public(cmd.Context(), func(ctx context.Context, l Locker) error {
				s, err := l.Stats(ctx, who)
				if err != nil {
					return err
				}
				return a.print(s, func(w io.Writer) { printStats(w, s) })
			})
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "owner address (default: wallet of the key file)")
	return cmd
}

func newCustodyCmd(a *App) *cobra.Command {
	var owner string
	cmd := &cobra.Command{
		Use:   "custody <asset>",
		Short: "Show the custody authority and escrow of a lock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asset, err := parseAddress("asset", args[0])
			if err != nil {
				return err
			}
			who, err := a.owner(owner)
			if err != nil {
				return err
			}
			return a.public(cmd.Context(), func(ctx context.Context, l Locker) error {
				c, err := l.Custody(ctx, who, asset)
				if err != nil {
					return err
				}
				return a.print(c, func(w io.Writer) {
					fmt.Fprintf(w, "program:    %s\n", c.Program)
					fmt.Fprintf(w, "authority:  %s (nonce %d)\n", c.Authority, c.Nonce)
					fmt.Fprintf(w, "escrow:     %s\n", c.Escrow)
					fmt.Fprintf(w, "balance:    %d\n", c.EscrowBalance)
				})
			})
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "owner address (default: wallet of the key file)")
	return cmd
}

func newFaucetCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "faucet <asset> <amount>",
		Short: "Mint test tokens into the wallet (when the server allows it)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			asset, err := parseAddress("asset", args[0])
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			return a.signed(cmd.Context(), opFaucet, func(ctx context.Context, l Locker) (*journal.Entry, error) {
				resp, err := l.Faucet(ctx, asset, amount)
				if err != nil {
					return nil, err
				}
				e := &journal.Entry{Asset: asset, Amount: amount}
				return e, a.print(resp, func(w io.Writer) {
					fmt.Fprintf(w, "Holding %s balance %d\n", resp.Holding, resp.Balance)
				})
			})
		},
	}
}

func newHistoryCmd(a *App) *cobra.Command {
	var (
		owner string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List operations recorded in the local journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			who, err := a.owner(owner)
			if err != nil {
				return err
			}
			repo, closeFn, err := a.journal(cmd.Context(), a.config.JournalFile)
			if err != nil {
				return err
			}
			defer closeFn()
			if repo == nil {
				return errJournalDisabled
			}

			entries, err := repo.List(cmd.Context(), who, limit)
			if err != nil {
				return err
			}
			if entries == nil {
				entries = []*journal.Entry{}
			}
			return a.print(entries, func(w io.Writer) {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "TIME\tOP\tASSET\tAMOUNT\tPAYOUT\tPENALTY")
				for _, e := range entries {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\n",
						formatUnix(e.RecordedAt.Unix()), e.Op, e.Asset, e.Amount, e.Payout, e.Penalty)
				}
				_ = tw.Flush()
			})
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "owner address (default: wallet of the key file)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of entries, 0 for all")
	return cmd
}

func newPingCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the server is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.public(cmd.Context(), func(ctx context.Context, l Locker) error {
				if err := l.Ping(ctx); err != nil {
					return err
				}
				return a.print(map[string]string{"status": "OK"}, func(w io.Writer) { fmt.Fprintln(w, "OK") })
			})
		},
	}
}

// signed runs fn with a client that holds the unsealed wallet key and
// journals the entry fn returns.
func (a *App) signed(ctx context.Context, op string, fn func(context.Context, Locker) (*journal.Entry, error)) error {
	pw, err := a.passphrase(fmt.Sprintf("Passphrase for %s: ", a.config.KeyFile))
	if err != nil {
		return err
	}
	key, err := keystore.Load(a.config.KeyFile, pw)
	cryptox.Wipe(pw)
	if err != nil {
		return err
	}

	var entry *journal.Entry
	err = a.call(ctx, key, func(ctx context.Context, l Locker) error {
		var ferr error
		entry, ferr = fn(ctx, l)
		return ferr
	})
	if entry != nil {
		entry.Op = op
		entry.Owner = keystore.Address(key)
		a.record(ctx, entry)
	}
	return err
}

// record appends e to the journal. Failures only warn: the operation
// itself already succeeded on the server.
func (a *App) record(ctx context.Context, e *journal.Entry) {
	repo, closeFn, err := a.journal(ctx, a.config.JournalFile)
	if err != nil {
		fmt.Fprintf(a.errOut, "warning: journal unavailable: %v\n", err)
		return
	}
	defer closeFn()
	if repo == nil {
		return
	}
	if err := repo.Append(ctx, e); err != nil {
		fmt.Fprintf(a.errOut, "warning: %v\n", err)
	}
}

// public runs fn with a client that carries no key.
func (a *App) public(ctx context.Context, fn func(context.Context, Locker) error) error {
	return a.call(ctx, nil, fn)
}

func (a *App) call(ctx context.Context, key ed25519.PrivateKey, fn func(context.Context, Locker) error) error {
	l, err := a.dial(a.config.ServerEndpointAddr, key)
	if err != nil {
		return err
	}
	defer l.Close()

	ctx, cancel := a.callContext(ctx)
	defer cancel()
	return fn(ctx, l)
}

// owner parses flag, or falls back to the address of the key file.
func (a *App) owner(flag string) (pubkey.Address, error) {
	if flag != "" {
		return parseAddress("owner", flag)
	}
	addr, err := keystore.Peek(a.config.KeyFile)
	if err != nil {
		return pubkey.Address{}, fmt.Errorf("no --owner given and key file unreadable: %w", err)
	}
	return addr, nil
}

func parseAddress(name, s string) (pubkey.Address, error) {
	addr, err := pubkey.Parse(s)
	if err != nil {
		return pubkey.Address{}, fmt.Errorf("%s: %w", name, err)
	}
	return addr, nil
}

func parseAmount(s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("amount: %w", err)
	}
	return n, nil
}
