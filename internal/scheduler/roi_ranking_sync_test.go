package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vgalindo/retail-opportunity-api/infrastructure/repository/mocks"
	"github.com/vgalindo/retail-opportunity-api/internal/domain"
	"github.com/vgalindo/retail-opportunity-api/internal/usecases/exhibiting"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(t *testing.T, ctrl *gomock.Controller) (*ROIRankingSyncService, *mocks.MockExhibitionROIRepository, *mocks.MockROIRankingRepository) {
	t.Helper()

	mockROIRepo := mocks.NewMockExhibitionROIRepository(ctrl)
	mockRankingRepo := mocks.NewMockROIRankingRepository(ctrl)

	service := &ROIRankingSyncService{
		exhibitor:   exhibiting.NewService(mockROIRepo),
		rankingRepo: mockRankingRepo,
		config: ROIRankingSyncConfig{
			CronSchedule: "0 6 * * *",
			SyncEnabled:  true,
		},
		defaultParams: &domain.ExhibitionParams{
			CostPerExhibition: 2500,
			SalesLiftFraction: 0.15,
			DaysInMonth:       30,
		},
	}

	return service, mockROIRepo, mockRankingRepo
}

func TestROIRankingSyncService_UpdateROIRanking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockROIRepo, mockRankingRepo := newTestSyncService(t, ctrl)

	roiItems := []*domain.ExhibitionROIItem{
		{
			SkuFact:                 domain.SkuFact{StoreID: "A", Sku: "SKU-1"},
			ROIPesos:                500,
			ExtraordinaryOrderUnits: 10,
			ExtraordinaryOrderValue: 1200,
		},
		{
			SkuFact:                 domain.SkuFact{StoreID: "B", Sku: "SKU-2"},
			ROIPesos:                800,
			ExtraordinaryOrderUnits: 7,
			ExtraordinaryOrderValue: 2100,
		},
	}

	t.Run("Persiste o snapshot do período corrente ordenado por ROI", func(t *testing.T) {
		mockROIRepo.EXPECT().
			ListROIRows(gomock.Any()).
			Return(roiItems, nil)

		mockRankingRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(snapshot *domain.ROIRankingSnapshot) error {
				assert.Equal(t, time.Now().Format("01-2006"), snapshot.Period)
				assert.Len(t, snapshot.Ranking, 2)
				assert.Equal(t, "B", snapshot.Ranking[0].StoreID)
				assert.Equal(t, "A", snapshot.Ranking[1].StoreID)
				assert.Equal(t, 2500.0, snapshot.Params.CostPerExhibition)
				return nil
			})

		err := service.UpdateROIRanking()

		assert.NoError(t, err)

		status := service.GetStatus()
		assert.Equal(t, false, status["running"])
		assert.NotZero(t, status["last_sync_completed_at"])
	})

	t.Run("Erro no cálculo de ROI não persiste snapshot", func(t *testing.T) {
		mockROIRepo.EXPECT().
			ListROIRows(gomock.Any()).
			Return(nil, errors.New("função indisponível"))

		err := service.UpdateROIRanking()

		assert.Error(t, err)
	})

	t.Run("Erro na persistência propaga", func(t *testing.T) {
		mockROIRepo.EXPECT().
			ListROIRows(gomock.Any()).
			Return(roiItems, nil)
		mockRankingRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			Return(errors.New("conexão recusada"))

		err := service.UpdateROIRanking()

		assert.Error(t, err)
	})
}
