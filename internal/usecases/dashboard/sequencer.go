package dashboard

import (
	"sync"
	"time"
)

type viewState struct {
	latest  uint64
	touched time.Time
}

// Sequencer emite tokens crescentes por visualização do dashboard para que
// apenas a resposta RFM mais recente seja exibida.
type Sequencer struct {
	mu    sync.Mutex
	views map[string]*viewState
	ttl   time.Duration
	now   func() time.Time
}

func NewSequencer(ttl time.Duration) *Sequencer {
	return &Sequencer{
		views: map[string]*viewState{},
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *Sequencer) Register(viewID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.views[viewID] = &viewState{touched: s.now()}
}

// Next emite o próximo token da visualização, registrando-a se preciso.
func (s *Sequencer) Next(viewID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	view, ok := s.views[viewID]
	if !ok {
		view = &viewState{}
		s.views[viewID] = view
	}
	view.latest++
	view.touched = s.now()

	return view.latest
}

// IsCurrent indica se o token ainda é o último emitido. Visualizações
// desconhecidas (expiradas ou de outra instância) não são bloqueadas.
func (s *Sequencer) IsCurrent(viewID string, token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	view, ok := s.views[viewID]
	if !ok {
		return true
	}
	view.touched = s.now()

	return token >= view.latest
}

// Prune remove visualizações sem atividade há mais que o TTL.
func (s *Sequencer) Prune() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, view := range s.views {
		if view.touched.Before(cutoff) {
			delete(s.views, id)
			removed++
		}
	}

	return removed
}

func (s *Sequencer) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.views)
}
