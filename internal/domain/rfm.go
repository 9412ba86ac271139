package domain

// RFMRow é a projeção analítica (somente leitura) de um publisher.
type RFMRow struct {
	PublisherID   ID     `json:"ID_phap_nhan"`
	PublisherName Text   `json:"ten_phap_nhan"`
	Segment       Text   `json:"Segment"`
	RScore        Number `json:"R_score"`
	FScore        Number `json:"F_score"`
	MScore        Number `json:"M_score"`
	Recency       Number `json:"Recency"`
	Frequency     Number `json:"Frequency"`
	Monetary      Number `json:"Monetary"`
}

type RFMResponse struct {
	Data    []RFMRow `json:"data"`
	Message string   `json:"message,omitempty"`
}

type Segment string

const (
	SegmentChampion  Segment = "Champion"
	SegmentLoyal     Segment = "Loyal"
	SegmentPotential Segment = "Potential"
	SegmentAtRisk    Segment = "At risk"
	SegmentOthers    Segment = "Others"
)
