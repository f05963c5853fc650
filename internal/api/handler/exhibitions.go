package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vgalindo/retail-opportunity-api/internal/config"
	"github.com/vgalindo/retail-opportunity-api/internal/domain"
	"github.com/vgalindo/retail-opportunity-api/internal/usecases/exhibiting"
	"github.com/vgalindo/retail-opportunity-api/pkg/apiErrors"
	"github.com/vgalindo/retail-opportunity-api/pkg/log"
)

// parseExhibitionParams monta os parâmetros de exibição a partir da query
// string, usando os defaults configurados para campos ausentes
func parseExhibitionParams(r *http.Request, cfg *config.Config) (*domain.ExhibitionParams, error) {
	params := &domain.ExhibitionParams{
		CostPerExhibition: cfg.Engine.DefaultCostPerExhibition,
		SalesLiftFraction: cfg.Engine.DefaultSalesLiftFraction,
		DaysInMonth:       cfg.Engine.DefaultDaysInMonth,
	}

	query := r.URL.Query()

	if cost := query.Get("cost"); cost != "" {
		parsed, err := strconv.ParseFloat(cost, 64)
		if err != nil {
			return nil, err
		}
		params.CostPerExhibition = parsed
	}

	if lift := query.Get("lift"); lift != "" {
		parsed, err := strconv.ParseFloat(lift, 64)
		if err != nil {
			return nil, err
		}
		params.SalesLiftFraction = parsed
	}

	if days := query.Get("days"); days != "" {
		parsed, err := strconv.Atoi(days)
		if err != nil {
			return nil, err
		}
		params.DaysInMonth = parsed
	}

	return params, nil
}

// GetExhibitionROI retorna o cálculo completo de ROI de exibição: itens por
// (loja, sku), agrupamento por loja e resumo
func GetExhibitionROI(service exhibiting.Exhibitor, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params, err := parseExhibitionParams(r, cfg)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetros de exibição inválidos", nil)
			return
		}

		response, err := service.ComputeExhibitionROI(params)
		if err != nil {
			logger.WithError(err).Error("exhibitions: erro ao calcular ROI de exibição")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("exhibitions: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetTopStoresByROI retorna as N lojas de maior ROI de exibição
func GetTopStoresByROI(service exhibiting.Exhibitor, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params, err := parseExhibitionParams(r, cfg)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetros de exibição inválidos", nil)
			return
		}

		n := 10 // Tamanho padrão do widget de ranking do dashboard
		if nParam := r.URL.Query().Get("n"); nParam != "" {
			parsed, parseErr := strconv.Atoi(nParam)
			if parseErr != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro n inválido", nil)
				return
			}
			n = parsed
		}

		groups, err := service.TopStoresByROI(n, params)
		if err != nil {
			logger.WithError(err).Error("exhibitions: erro ao calcular top lojas por ROI")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(groups); err != nil {
			logger.WithError(err).Error("exhibitions: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetROIForStore retorna a lista plana de itens de ROI de uma única loja
func GetROIForStore(service exhibiting.Exhibitor, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		storeID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if storeID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da loja não informado", nil)
			return
		}

		params, err := parseExhibitionParams(r, cfg)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetros de exibição inválidos", nil)
			return
		}

		items, err := service.ROIForStore(storeID, params)
		if err != nil {
			logger.WithError(err).WithField("store_id", storeID).Error("exhibitions: erro ao buscar ROI da loja")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(items); err != nil {
			logger.WithError(err).Error("exhibitions: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
