package plot

import "sync"

// StringPool interns strings and hands out their index in order of
// first addition. It is the domain of band and ordinal scales.
type StringPool struct {
	sync.Mutex
	pool  []string
	index map[string]int
}

func NewStringPool() *StringPool {
	return &StringPool{
		pool:  make([]string, 0, 16),
		index: make(map[string]int, 16),
	}
}

// NewStringPoolFrom adds all of init in order.
func NewStringPoolFrom(init []string) *StringPool {
	sp := NewStringPool()
	for _, s := range init {
		sp.Add(s)
	}
	return sp
}

// Add returns the index of s, adding s if not yet present.
func (sp *StringPool) Add(s string) int {
	sp.Lock()
	defer sp.Unlock()
	if i, ok := sp.index[s]; ok {
		return i
	}
	sp.pool = append(sp.pool, s)
	sp.index[s] = len(sp.pool) - 1
	return len(sp.pool) - 1
}

// Find returns the index of s or -1.
func (sp *StringPool) Find(s string) int {
	sp.Lock()
	defer sp.Unlock()
	if i, ok := sp.index[s]; ok {
		return i
	}
	return -1
}

func (sp *StringPool) Len() int {
	sp.Lock()
	defer sp.Unlock()
	return len(sp.pool)
}

// Strings returns a copy of the pooled strings in index order.
func (sp *StringPool) Strings() []string {
	sp.Lock()
	defer sp.Unlock()
	return append([]string(nil), sp.pool...)
}
