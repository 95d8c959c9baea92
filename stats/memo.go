package stats

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/rustyeddy/tradestats/journal"
)

// Memo caches the last Compute result keyed by a content hash of the
// trades. A hit returns a copy of exactly what Compute would return.
type Memo struct {
	mu    sync.Mutex
	key   uint64
	valid bool
	stats Statistics
	hits  int
}

func (m *Memo) Compute(trades []journal.Trade) Statistics {
	key := Hash(trades)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.valid && m.key == key {
		m.hits++
		return m.stats.Clone()
	}
	m.stats = Compute(trades)
	m.key = key
	m.valid = true
	return m.stats.Clone()
}

// Hits reports how many calls were served from the cache.
func (m *Memo) Hits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits
}

// Hash digests every trade field that can influence Compute, in order.
func Hash(trades []journal.Trade) uint64 {
	d := xxhash.New()
	var buf [8]byte

	str := func(s string) {
		d.WriteString(s)
		d.Write([]byte{0})
	}
	num := func(x float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(x))
		d.Write(buf[:])
	}
	opt := func(p *float64) {
		if p == nil {
			d.Write([]byte{0})
			return
		}
		d.Write([]byte{1})
		num(*p)
	}

	binary.LittleEndian.PutUint64(buf[:], uint64(len(trades)))
	d.Write(buf[:])
	for _, t := range trades {
		str(t.ID)
		str(t.Date)
		str(t.ExitDate)
		str(t.Symbol)
		str(string(t.Direction))
		str(string(t.Status))
		str(t.Setup)
		num(t.PnL)
		opt(t.ExitPrice)
		opt(t.RR)
		binary.LittleEndian.PutUint64(buf[:], uint64(len(t.Tags)))
		d.Write(buf[:])
		for _, tag := range t.Tags {
			str(tag)
		}
	}
	return d.Sum64()
}
