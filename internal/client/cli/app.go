package cli

import (
	"bufio"
	"context"
	"crypto/ed25519"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/tokenlocker/internal/client/client"
	"github.com/dmitrijs2005/tokenlocker/internal/client/config"
	"github.com/dmitrijs2005/tokenlocker/internal/client/models"
	"github.com/dmitrijs2005/tokenlocker/internal/client/repositories/journal"
	"github.com/dmitrijs2005/tokenlocker/internal/pubkey"
)

// Locker is the part of client.GRPCClient the commands use.
type Locker interface {
	Deposit(ctx context.Context, asset pubkey.Address, amount uint64, duration time.Duration, earlyWithdrawal bool) (*models.DepositResult, error)
	WithdrawMature(ctx context.Context, asset pubkey.Address) (*models.WithdrawResult, error)
	WithdrawEarly(ctx context.Context, asset pubkey.Address) (*models.WithdrawResult, error)
	Position(ctx context.Context, owner, asset pubkey.Address) (*models.Position, error)
	Stats(ctx context.Context, owner pubkey.Address) (*models.UserStats, error)
	Custody(ctx context.Context, owner, asset pubkey.Address) (*models.Custody, error)
	Faucet(ctx context.Context, asset pubkey.Address, amount uint64) (*models.FaucetResult, error)
	Ping(ctx context.Context) error
	Close() error
}

// Dialer connects to addr. key is nil for read-only commands.
type Dialer func(addr string, key ed25519.PrivateKey) (Locker, error)

// JournalOpener opens the local journal; a nil repository means journaling
// is off.
type JournalOpener func(ctx context.Context, path string) (journal.Repository, func() error, error)

// App carries what every command needs: settings, terminal streams and
// the way to reach the server.
type App struct {
	config *config.Config

	in         io.Reader
	reader     *bufio.Reader
	out        io.Writer
	errOut     io.Writer
	dial       Dialer
	journal    JournalOpener
	passphrase func(prompt string) ([]byte, error)
	isTerminal func() bool

	configPath string
	output     string
}

// NewApp wires an App to the process terminal and a real gRPC client.
func NewApp() *App {
	cfg := &config.Config{}
	cfg.LoadDefaults()

	a := &App{
		config:     cfg,
		in:         os.Stdin,
		out:        os.Stdout,
		errOut:     os.Stderr,
		isTerminal: stdoutIsTerminal,
		journal:    openJournal,
		dial: func(addr string, key ed25519.PrivateKey) (Locker, error) {
			return client.NewGRPCClient(addr, key)
		},
	}
	a.passphrase = a.readPassphrase
	return a
}

func (a *App) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func openJournal(ctx context.Context, path string) (journal.Repository, func() error, error) {
	if path == "" {
		return nil, func() error { return nil }, nil
	}
	db, repo, err := client.OpenJournal(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	return repo, db.Close, nil
}
