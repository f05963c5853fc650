package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vgalindo/retail-opportunity-api/internal/usecases/ranking"
	"github.com/vgalindo/retail-opportunity-api/pkg/apiErrors"
)

// GetROIRanking retorna o snapshot pré-calculado do ranking de lojas por ROI
func GetROIRanking(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := service.GetROIRanking()
		if err != nil {
			logrus.Error("Erro ao buscar ranking de lojas por ROI:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ranking de lojas por ROI", nil)
			return
		}

		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Nenhum snapshot de ranking encontrado para o período", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(snapshot)
		if err != nil {
			logrus.Error("Erro ao enviar resposta do ranking:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
