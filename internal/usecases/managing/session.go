package managing

import (
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/po-console/internal/domain"
	"github.com/vfg2006/po-console/pkg/log"
	"github.com/vfg2006/po-console/pkg/utils"
)

const sessionIDSize = 16

var (
	ErrSessionExpired = errors.New("sessão de gestão expirada ou desconhecida")
	ErrRowNotFound    = errors.New("linha não encontrada na sessão")
)

// Table é o conjunto de linhas de um tipo de registro, ordenado por id decrescente.
type Table struct {
	Kind  domain.RecordKind
	rows  []*Row
	index map[domain.ID]*Row
}

func newTable(kind domain.RecordKind, rows []*Row) *Table {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].ID() > rows[j].ID() })

	index := make(map[domain.ID]*Row, len(rows))
	for _, r := range rows {
		index[r.ID()] = r
	}

	return &Table{Kind: kind, rows: rows, index: index}
}

func (t *Table) Views() []RowView {
	views := make([]RowView, 0, len(t.rows))
	for _, r := range t.rows {
		views = append(views, r.View())
	}
	return views
}

func (t *Table) Row(id domain.ID) (*Row, bool) {
	r, ok := t.index[id]
	return r, ok
}

// Session mantém os view-models de uma carga da página de gestão.
type Session struct {
	ID         string
	Publishers *Table
	POs        *Table
	touched    time.Time
}

func (s *Session) Table(kind domain.RecordKind) *Table {
	if kind == domain.RecordKindPO {
		return s.POs
	}
	return s.Publishers
}

type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: map[string]*Session{},
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create abre uma sessão com as linhas das duas listas. Registros sem id
// não têm endpoint de atualização e ficam fora da tabela.
func (s *SessionStore) Create(publishers []domain.Publisher, pos []domain.PO) (*Session, error) {
	id, err := utils.GenerateID(sessionIDSize)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id da sessão")
	}

	skipped := map[domain.RecordKind]int{}

	publisherRows := make([]*Row, 0, len(publishers))
	for _, p := range publishers {
		if p.ID == 0 {
			skipped[domain.RecordKindPublisher]++
			continue
		}
		publisherRows = append(publisherRows, NewRow(id, domain.RecordKindPublisher, p.ID, publisherAnchors(p)))
	}

	poRows := make([]*Row, 0, len(pos))
	for _, p := range pos {
		if p.ID == 0 {
			skipped[domain.RecordKindPO]++
			continue
		}
		poRows = append(poRows, NewRow(id, domain.RecordKindPO, p.ID, poAnchors(p)))
	}

	for kind, count := range skipped {
		log.L.WithFields(log.Fields{
			"record_kind": kind,
			"skipped":     count,
		}).Warn("managing: records without id left out of the table")
	}

	session := &Session{
		ID:         id,
		Publishers: newTable(domain.RecordKindPublisher, publisherRows),
		POs:        newTable(domain.RecordKindPO, poRows),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session.touched = s.now()
	s.sessions[id] = session

	return session, nil
}

// Get devolve a sessão e renova seu prazo.
func (s *SessionStore) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok || s.expired(session) {
		delete(s.sessions, id)
		return nil, ErrSessionExpired
	}
	session.touched = s.now()

	return session, nil
}

func (s *SessionStore) Prune() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if s.expired(session) {
			delete(s.sessions, id)
			removed++
		}
	}

	return removed
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

func (s *SessionStore) expired(session *Session) bool {
	return s.now().Sub(session.touched) > s.ttl
}
