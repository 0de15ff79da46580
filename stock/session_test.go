package stock

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/martijnjanssen/stocktable/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) Publish(_ context.Context, channel string, trackID string, message string, payload string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, channel+" "+util.Event(trackID, message, payload))
}

func TestSessionPublishesMutations(t *testing.T) {
	pub := &recordingPublisher{}
	s := NewSession(Load(DefaultSeed()), pub)
	ctx := context.Background()

	_, err := s.SearchAndHalvePrice(ctx, "t1", "AAPL")
	require.NoError(t, err)
	_, err = s.AddRecord(ctx, "t2", "IBM", "138", "22.5", "Tech")
	require.NoError(t, err)
	_, err = s.DeleteBySymbol(ctx, "t3", "JPM")
	require.NoError(t, err)
	s.SortByPriceAscending(ctx, "t4")

	assert.Equal(t, []string{
		"CHAN_TABLE t1#MESG_TABLE_HALVE#AAPL",
		"CHAN_TABLE t2#MESG_TABLE_ADD#IBM",
		"CHAN_TABLE t3#MESG_TABLE_DELETE#JPM",
		"CHAN_TABLE t4#MESG_TABLE_SORT#",
	}, pub.events)
}

func TestSessionDoesNotPublishFailures(t *testing.T) {
	pub := &recordingPublisher{}
	s := NewSession(Load(DefaultSeed()), pub)
	ctx := context.Background()

	_, err := s.SearchAndHalvePrice(ctx, "t1", "IBM")
	assert.Error(t, err)
	_, err = s.AddRecord(ctx, "t2", "IBM", "abc", "1", "Tech")
	assert.Error(t, err)
	_, err = s.DeleteBySymbol(ctx, "t3", "")
	assert.Error(t, err)
	_, err = s.AggregateByGroup("median")
	assert.Error(t, err)

	assert.Empty(t, pub.events)
	assert.Len(t, s.Snapshot(), 8)
}

func TestSessionSerializesAccess(t *testing.T) {
	s := NewSession(Load(DefaultSeed()), nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.AddRecord(ctx, "", "X", "1", "1", "Misc")
			assert.NoError(t, err)
			s.Snapshot()
		}()
	}
	wg.Wait()

	stats, err := s.AggregateByGroup(Count)
	require.NoError(t, err)
	assert.Equal(t, GroupStats{Group: "Misc", Price: 50, PE: 50, USD: 50}, stats[len(stats)-1])
}

func TestSessionPublishesInApplyOrder(t *testing.T) {
	pub := &recordingPublisher{}
	s := NewSession(Load(Seed{}), pub)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.AddRecord(ctx, "t", fmt.Sprintf("S%d", i), "1", "1", "Misc")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	records := s.Snapshot()
	require.Len(t, records, 50)
	require.Len(t, pub.events, 50)
	for i, r := range records {
		assert.Equal(t, "CHAN_TABLE "+util.Event("t", util.MESSAGE_TABLE_ADD, r.Symbol), pub.events[i])
	}
}
