package scoring

import (
	"math"
	"sort"
)

const scoreBins = 5

// quantileEdges calcula os limites dos quintis por interpolação linear.
func quantileEdges(values []float64) []float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	edges := make([]float64, scoreBins+1)
	last := float64(len(sorted) - 1)
	for i := range edges {
		pos := float64(i) / scoreBins * last
		lo := math.Floor(pos)
		hi := math.Ceil(pos)
		frac := pos - lo
		edges[i] = sorted[int(lo)] + frac*(sorted[int(hi)]-sorted[int(lo)])
	}

	return edges
}

func uniqueEdges(edges []float64) bool {
	for i := 1; i < len(edges); i++ {
		if edges[i] == edges[i-1] {
			return false
		}
	}
	return true
}

// quintileScores atribui notas de 1 a 5 por quintil. Com descending a nota
// mais alta vai para os menores valores. Quando os quintis não são distintos
// as notas vêm do ranking posicional.
func quintileScores(values []float64, descending bool) []int {
	if len(values) == 0 {
		return nil
	}

	edges := quantileEdges(values)
	if !uniqueEdges(edges) {
		return rankScores(values, descending)
	}

	scores := make([]int, len(values))
	for i, v := range values {
		bin := scoreBins - 1
		for b := 1; b <= scoreBins; b++ {
			if v <= edges[b] {
				bin = b - 1
				break
			}
		}
		if descending {
			scores[i] = scoreBins - bin
		} else {
			scores[i] = bin + 1
		}
	}

	return scores
}

// rankScores usa o ranking com desempate pela ordem de aparição.
func rankScores(values []float64, descending bool) []int {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		if descending {
			return values[order[a]] > values[order[b]]
		}
		return values[order[a]] < values[order[b]]
	})

	n := float64(len(values))
	scores := make([]int, len(values))
	for rank, idx := range order {
		score := int(float64(rank+1)/n*scoreBins) + 1
		scores[idx] = min(scoreBins, max(1, score))
	}

	return scores
}
