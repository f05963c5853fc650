// Package analyzing deriva o veredito de viabilidade do investimento em
// exibição e monta o relatório de oportunidade consumido pelo dashboard
package analyzing

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vgalindo/retail-opportunity-api/internal/domain"
	"github.com/vgalindo/retail-opportunity-api/internal/usecases/exhibiting"
	"github.com/vgalindo/retail-opportunity-api/internal/usecases/valorizing"
	"github.com/vgalindo/retail-opportunity-api/pkg/utils"
)

type Analyzer interface {
	// OpportunityReport calcula o ROI de exibição e a valorização de riscos em
	// paralelo e deriva o veredito de viabilidade do resumo de ROI
	OpportunityReport(params *domain.ExhibitionParams) (*domain.OpportunityReport, error)
}

type Service struct {
	exhibitor exhibiting.Exhibitor
	valorizer valorizing.Valorizer
}

func NewService(exhibitor exhibiting.Exhibitor, valorizer valorizing.Valorizer) Analyzer {
	return &Service{
		exhibitor: exhibitor,
		valorizer: valorizer,
	}
}

func (s *Service) OpportunityReport(params *domain.ExhibitionParams) (*domain.OpportunityReport, error) {
	var (
		exhibition    *domain.ExhibitionROIResponse
		risks         *domain.RiskOverview
		exhibitionErr error
		riskErr       error
	)

	// As duas buscas são independentes; cada ramo escreve apenas em seu
	// próprio resultado e a junção acontece após o Wait
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		exhibition, exhibitionErr = s.exhibitor.ComputeExhibitionROI(params)
	}()

	go func() {
		defer wg.Done()
		risks, riskErr = s.valorizer.AggregateRisk()
	}()

	wg.Wait()

	// Sem o ROI não há veredito possível; a falha encerra o relatório
	if exhibitionErr != nil {
		return nil, fmt.Errorf("erro ao calcular ROI de exibição para o relatório: %w", exhibitionErr)
	}

	// A seção de riscos degrada para nula sem abortar o relatório
	if riskErr != nil {
		logrus.WithError(riskErr).Warn("Erro na valorização de riscos, relatório seguirá sem a seção de riscos")
		risks = nil
	}

	return &domain.OpportunityReport{
		Exhibition: exhibition,
		Verdict:    AnalyzeViability(exhibition.Summary, params),
		Risks:      risks,
	}, nil
}

// AnalyzeViability deriva o veredito de viabilidade a partir do resumo de ROI.
// O limiar é fixo: viável quando o ROI médio supera 1 (multiplicador, 1 =
// ponto de equilíbrio); exatamente 1 não é viável. Regra de negócio
// intencionalmente não configurável.
func AnalyzeViability(summary *domain.ExhibitionSummary, params *domain.ExhibitionParams) *domain.ViabilityVerdict {
	totalCost := params.CostPerExhibition * float64(summary.TotalStores)
	netReturn := summary.TotalOrderValue

	return &domain.ViabilityVerdict{
		IsViable:         summary.AvgROI > 1,
		ViableStoreCount: summary.TotalStores,
		AvgROI:           summary.AvgROI,
		NetMonthlyReturn: netReturn,
		TotalCost:        totalCost,
		// Guarda de custo zerado: rentabilidade 0, nunca NaN
		ProfitabilityPct: utils.RoundWithTwoDecimalPlace(100 * utils.SafeRatio(netReturn-totalCost, totalCost)),
	}
}
