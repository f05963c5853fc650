package ranking

import (
	"time"

	"github.com/vgalindo/retail-opportunity-api/infrastructure/repository"
	"github.com/vgalindo/retail-opportunity-api/internal/domain"
)

type RankingService interface {
	GetROIRanking() (*domain.ROIRankingSnapshot, error)
}

// ROIRankingService lê o snapshot pré-calculado do ranking de lojas por ROI do
// período corrente (atualizado pelo agendador)
type ROIRankingService struct {
	ROIRankingRepository repository.ROIRankingRepository
}

func NewROIRankingService(roiRankingRepository repository.ROIRankingRepository) RankingService {
	return &ROIRankingService{
		ROIRankingRepository: roiRankingRepository,
	}
}

func (s *ROIRankingService) GetROIRanking() (*domain.ROIRankingSnapshot, error) {
	period := time.Now().Format("01-2006")

	snapshot, err := s.ROIRankingRepository.GetByPeriod(period)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}
