package domain

import "time"

// ROIRankingSnapshot é o snapshot pré-calculado do ranking de lojas por ROI de
// exibição, atualizado pelo agendador noturno para leitura direta do dashboard.
type ROIRankingSnapshot struct {
	ID          string            `json:"id"`
	Period      string            `json:"period"` // Formato mm-yyyy (ex: 01-2024)
	Params      *ExhibitionParams `json:"params"`
	Ranking     []*StoreROIGroup  `json:"ranking"`
	GeneratedAt time.Time         `json:"generated_at"`
}
