package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DandaAkhilReddy/reddyfit-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func edamamFor(t *testing.T, handler http.HandlerFunc) (*EdamamService, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &EdamamService{
		appID:   "id",
		appKey:  "key",
		baseURL: srv.URL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}, srv
}

func TestCompute_ParsesFullResponse(t *testing.T) {
	var gotBody map[string]interface{}
	svc, _ := edamamFor(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{
			"totalNutrients": {
				"ENERC_KCAL": {"label": "Energy", "quantity": 95, "unit": "kcal"},
				"PROCNT": {"label": "Protein", "quantity": 0.5, "unit": "g"},
				"CHOCDF": {"label": "Carbs", "quantity": 25, "unit": "g"},
				"FAT": {"label": "Fat", "quantity": 0.3, "unit": "g"},
				"VITC": {"label": "Vitamin C", "quantity": 8.4, "unit": "mg"},
				"K": {"label": "Potassium", "quantity": 195, "unit": "mg"},
				"CA": {"label": "Calcium", "quantity": 11, "unit": "mg"}
			}
		}`))
	})

	nut, err := svc.Compute(context.Background(), []string{"apple"})
	require.NoError(t, err)

	assert.Equal(t, 95.0, nut.Calories)
	assert.Equal(t, models.Macronutrients{Protein: 0.5, Carbohydrates: 25, Fat: 0.3}, nut.Macronutrients)
	assert.Equal(t, models.MicronutrientList{{Name: "Vitamin C", Amount: 8.4}}, nut.Vitamins)
	assert.Equal(t, models.MicronutrientList{
		{Name: "Calcium", Amount: 11},
		{Name: "Potassium", Amount: 195},
	}, nut.Minerals)

	// labels travel as the ingredient list
	assert.Equal(t, []interface{}{"apple"}, gotBody["ingr"])
}

func TestCompute_MissingRequiredFieldIsMalformed(t *testing.T) {
	svc, _ := edamamFor(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"totalNutrients": {
				"ENERC_KCAL": {"quantity": 95},
				"CHOCDF": {"quantity": 25},
				"FAT": {"quantity": 0.3}
			}
		}`))
	})

	_, err := svc.Compute(context.Background(), []string{"apple"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PROCNT")
}

func TestCompute_NonOKStatus(t *testing.T) {
	svc, _ := edamamFor(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := svc.Compute(context.Background(), []string{"apple"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestCompute_InvalidJSON(t *testing.T) {
	svc, _ := edamamFor(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := svc.Compute(context.Background(), []string{"apple"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}
