package repository

import (
	"encoding/json"
	"strconv"
)

// NormalizeMetricRecord converte uma linha bruta heterogênea (valores nulos,
// strings numéricas, json.Number) em um registro com todos os campos esperados
// como float64. Valores ausentes, nulos ou não numéricos viram 0: a fonte de
// dados retorna tipos heterogêneos e o dashboard prefere exibir zero a falhar.
// Toda coerção numérica da camada de dados passa por aqui, para que a política
// de zero silencioso fique auditável em um único lugar.
func NormalizeMetricRecord(row map[string]any, fields []string) map[string]float64 {
	record := make(map[string]float64, len(fields))

	for _, field := range fields {
		record[field] = coerceNumeric(row[field])
	}

	return record
}

func coerceNumeric(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0
		}
		return parsed
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}
