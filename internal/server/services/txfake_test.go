package services

import (
	"context"
	"database/sql/driver"
	"errors"
	"maps"

	"github.com/dmitrijs2005/tokenlocker/internal/pubkey"
	"github.com/dmitrijs2005/tokenlocker/internal/server/models"
)

// txConnector is a database/sql connector that only does transactions.
// Begin snapshots the fake repositories and Rollback restores them.
type txConnector struct {
	rm *fakeRepoManager
}

func (c txConnector) Connect(context.Context) (driver.Conn, error) { return txConn(c), nil }
func (c txConnector) Driver() driver.Driver                        { return txDriver(c) }

type txDriver struct {
	rm *fakeRepoManager
}

func (d txDriver) Open(string) (driver.Conn, error) { return txConn(d), nil }

type txConn struct {
	rm *fakeRepoManager
}

func (txConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("txconn: statements are not supported")
}

func (txConn) Close() error { return nil }

func (c txConn) Begin() (driver.Tx, error) {
	return c.BeginTx(context.Background(), driver.TxOptions{})
}

func (c txConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	return &fakeTx{rm: c.rm, snap: c.rm.snapshot()}, nil
}

type fakeTx struct {
	rm   *fakeRepoManager
	snap repoSnapshot
}

func (t *fakeTx) Commit() error {
	t.rm.commits++
	return nil
}

func (t *fakeTx) Rollback() error {
	t.rm.restore(t.snap)
	t.rm.rollbacks++
	return nil
}

type repoSnapshot struct {
	positions map[positionKey]models.LockPosition
	stats     map[pubkey.Address]models.UserStats
	holdings  map[pubkey.Address]models.Holding
}

func (m *fakeRepoManager) snapshot() repoSnapshot {
	m.positions.mu.Lock()
	defer m.positions.mu.Unlock()
	m.stats.mu.Lock()
	defer m.stats.mu.Unlock()
	m.holdings.mu.Lock()
	defer m.holdings.mu.Unlock()

	return repoSnapshot{
		positions: maps.Clone(m.positions.rows),
		stats:     maps.Clone(m.stats.rows),
		holdings:  maps.Clone(m.holdings.rows),
	}
}

func (m *fakeRepoManager) restore(s repoSnapshot) {
	m.positions.mu.Lock()
	defer m.positions.mu.Unlock()
	m.stats.mu.Lock()
	defer m.stats.mu.Unlock()
	m.holdings.mu.Lock()
	defer m.holdings.mu.Unlock()

	m.positions.rows = s.positions
	m.stats.rows = s.stats
	m.holdings.rows = s.holdings
}
