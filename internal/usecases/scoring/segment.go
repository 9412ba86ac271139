package scoring

import "github.com/vfg2006/po-console/internal/domain"

// Segment classifica o publisher a partir das notas R, F e M.
func Segment(r, f, m int) domain.Segment {
	switch {
	case r >= 4 && f >= 4 && m >= 4:
		return domain.SegmentChampion
	case r >= 4 && f >= 3:
		return domain.SegmentLoyal
	case r >= 3 && m >= 3:
		return domain.SegmentPotential
	case r <= 2 && f <= 2:
		return domain.SegmentAtRisk
	default:
		return domain.SegmentOthers
	}
}
