package repository

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMetricRecord(t *testing.T) {
	fields := []string{"sales_value", "sales_units", "inventory_final"}

	tests := []struct {
		name     string
		row      map[string]any
		expected map[string]float64
	}{
		{
			name: "Valores numéricos passam direto",
			row: map[string]any{
				"sales_value":     1234.56,
				"sales_units":     int64(42),
				"inventory_final": 7,
			},
			expected: map[string]float64{
				"sales_value":     1234.56,
				"sales_units":     42,
				"inventory_final": 7,
			},
		},
		{
			name: "Strings numéricas e json.Number são convertidas",
			row: map[string]any{
				"sales_value":     "1500.75",
				"sales_units":     json.Number("30"),
				"inventory_final": json.Number("12.5"),
			},
			expected: map[string]float64{
				"sales_value":     1500.75,
				"sales_units":     30,
				"inventory_final": 12.5,
			},
		},
		{
			name: "Nulos, ausentes e não numéricos viram zero silencioso",
			row: map[string]any{
				"sales_value": nil,
				"sales_units": "n/d",
				// inventory_final ausente da linha
			},
			expected: map[string]float64{
				"sales_value":     0,
				"sales_units":     0,
				"inventory_final": 0,
			},
		},
		{
			name: "Tipos inesperados viram zero",
			row: map[string]any{
				"sales_value":     map[string]any{"nested": 1},
				"sales_units":     []any{1, 2},
				"inventory_final": true,
			},
			expected: map[string]float64{
				"sales_value":     0,
				"sales_units":     0,
				"inventory_final": 0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeMetricRecord(tt.row, fields)

			assert.Equal(t, tt.expected, result)

			// Todos os campos pedidos sempre presentes no registro
			assert.Len(t, result, len(fields))
		})
	}
}
