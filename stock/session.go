package stock

import (
	"context"
	"sync"

	"github.com/martijnjanssen/stocktable/util"
	"github.com/sirupsen/logrus"
)

// Publisher announces table changes to listeners.
type Publisher interface {
	Publish(ctx context.Context, channel string, trackID string, message string, payload string)
}

// Session owns the table for the lifetime of the process and serializes
// access to it. Every successful mutation is announced on util.CHANNEL_TABLE
// while the lock is held, so events go out in the order the changes were
// applied.
type Session struct {
	mu    sync.Mutex
	table *Table
	pub   Publisher
}

// NewSession wraps table. A nil publisher disables change events.
func NewSession(table *Table, pub Publisher) *Session {
	if pub == nil {
		pub = util.NopPublisher{}
	}

	return &Session{
		table: table,
		pub:   pub,
	}
}

func (s *Session) Snapshot() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.table.Snapshot()
}

func (s *Session) SearchAndHalvePrice(ctx context.Context, trackID string, symbol string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.table.SearchAndHalvePrice(symbol)
	if err != nil {
		return 0, err
	}

	logrus.WithField("symbol", symbol).WithField("updated", n).Info("Halved price")
	s.pub.Publish(ctx, util.CHANNEL_TABLE, trackID, util.MESSAGE_TABLE_HALVE, symbol)
	return n, nil
}

func (s *Session) AddRecord(ctx context.Context, trackID string, symbol, priceText, peText, group string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.table.AddRecord(symbol, priceText, peText, group)
	if err != nil {
		return Record{}, err
	}

	logrus.WithField("symbol", r.Symbol).Info("Added record")
	s.pub.Publish(ctx, util.CHANNEL_TABLE, trackID, util.MESSAGE_TABLE_ADD, r.Symbol)
	return r, nil
}

func (s *Session) DeleteBySymbol(ctx context.Context, trackID string, symbol string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.table.DeleteBySymbol(symbol)
	if err != nil {
		return 0, err
	}

	logrus.WithField("symbol", symbol).WithField("deleted", n).Info("Deleted records")
	s.pub.Publish(ctx, util.CHANNEL_TABLE, trackID, util.MESSAGE_TABLE_DELETE, symbol)
	return n, nil
}

func (s *Session) SortByPriceAscending(ctx context.Context, trackID string) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.table.SortByPriceAscending()
	records := s.table.Snapshot()

	s.pub.Publish(ctx, util.CHANNEL_TABLE, trackID, util.MESSAGE_TABLE_SORT, "")
	return records
}

func (s *Session) AggregateByGroup(function string) ([]GroupStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.table.AggregateByGroup(function)
}
