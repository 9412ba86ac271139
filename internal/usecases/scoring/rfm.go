package scoring

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/po-console/internal/domain"
	"github.com/vfg2006/po-console/pkg/log"
)

const MsgNoValidData = "Không có dữ liệu PO hợp lệ (sau khi lọc)."

type DataSource interface {
	AllData(ctx context.Context) ([]domain.POFact, error)
}

// Service calcula a tabela RFM localmente a partir de /all-data.
type Service struct {
	source DataSource
	now    func() time.Time
}

func NewService(source DataSource) *Service {
	return &Service{source: source, now: time.Now}
}

func (s *Service) RFM(ctx context.Context, filters domain.FilterParams) (*domain.RFMResponse, error) {
	facts, err := s.source.AllData(ctx)
	if err != nil {
		return nil, err
	}

	filtered, err := Filter(facts, filters)
	if err != nil {
		return nil, err
	}

	rows := Score(filtered, names(facts), s.now())
	log.ForContext(ctx).WithField("rows", len(rows)).Debug("scoring: rfm computed locally")

	if len(rows) == 0 {
		return &domain.RFMResponse{Data: []domain.RFMRow{}, Message: MsgNoValidData}, nil
	}

	return &domain.RFMResponse{Data: rows}, nil
}

type aggregate struct {
	id       domain.ID
	latest   time.Time
	poIDs    map[domain.ID]struct{}
	monetary decimal.Decimal
}

// Score agrega os POs por publisher e calcula notas, segmento e ordenação.
// POs com valor não positivo ficam fora do cálculo. A recência conta dias
// inteiros a partir da meia-noite de now, usando a última data válida; um
// publisher sem nenhuma data válida fica com Recency e R_score vazios.
func Score(facts []Fact, publisherNames map[domain.ID]string, now time.Time) []domain.RFMRow {
	byPublisher := map[domain.ID]*aggregate{}
	for _, f := range facts {
		if !f.Amount.Valid || !f.Amount.Value.IsPositive() {
			continue
		}

		agg, ok := byPublisher[f.PublisherID]
		if !ok {
			agg = &aggregate{id: f.PublisherID, poIDs: map[domain.ID]struct{}{}}
			byPublisher[f.PublisherID] = agg
		}
		if f.Created.After(agg.latest) {
			agg.latest = f.Created
		}
		agg.poIDs[f.POID] = struct{}{}
		agg.monetary = agg.monetary.Add(f.Amount.Value)
	}

	if len(byPublisher) == 0 {
		return nil
	}

	aggs := make([]*aggregate, 0, len(byPublisher))
	for _, agg := range byPublisher {
		aggs = append(aggs, agg)
	}
	sort.Slice(aggs, func(i, j int) bool { return aggs[i].id < aggs[j].id })

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	recency := make([]float64, len(aggs))
	frequency := make([]float64, len(aggs))
	monetary := make([]float64, len(aggs))
	var datedIdx []int
	var datedRecency []float64
	for i, agg := range aggs {
		if !agg.latest.IsZero() {
			recency[i] = math.Floor(midnight.Sub(agg.latest).Hours() / 24)
			datedIdx = append(datedIdx, i)
			datedRecency = append(datedRecency, recency[i])
		}
		frequency[i] = float64(len(agg.poIDs))
		monetary[i] = agg.monetary.InexactFloat64()
	}

	rScores := make([]int, len(aggs))
	if len(datedIdx) > 0 {
		for k, score := range quintileScores(datedRecency, true) {
			rScores[datedIdx[k]] = score
		}
	}
	fScores := quintileScores(frequency, false)
	mScores := quintileScores(monetary, false)

	rows := make([]domain.RFMRow, len(aggs))
	for i, agg := range aggs {
		rows[i] = domain.RFMRow{
			PublisherID:   agg.id,
			PublisherName: domain.Text(publisherNames[agg.id]),
			Segment:       domain.Text(Segment(rScores[i], fScores[i], mScores[i])),
			FScore:        domain.NumberFromInt(int64(fScores[i])),
			MScore:        domain.NumberFromInt(int64(mScores[i])),
			Frequency:     domain.NumberFromInt(int64(frequency[i])),
			Monetary:      domain.NewNumber(agg.monetary),
		}
		if !agg.latest.IsZero() {
			rows[i].RScore = domain.NumberFromInt(int64(rScores[i]))
			rows[i].Recency = domain.NumberFromInt(int64(recency[i]))
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if c := a.Monetary.Value.Cmp(b.Monetary.Value); c != 0 {
			return c > 0
		}
		if c := a.RScore.Value.Cmp(b.RScore.Value); c != 0 {
			return c > 0
		}
		if c := a.FScore.Value.Cmp(b.FScore.Value); c != 0 {
			return c > 0
		}
		return a.MScore.Value.Cmp(b.MScore.Value) > 0
	})

	return rows
}

// names usa a base completa para que o filtro não esconda o nome do publisher.
func names(facts []domain.POFact) map[domain.ID]string {
	out := map[domain.ID]string{}
	for _, f := range facts {
		if _, ok := out[f.PublisherID]; !ok && f.PublisherName != "" {
			out[f.PublisherID] = f.PublisherName.String()
		}
	}
	return out
}
