package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/DandaAkhilReddy/reddyfit-backend/models"
)

// NutritionComputer maps a non-empty list of food labels to one aggregated
// nutrition value for the whole meal.
type NutritionComputer interface {
	Compute(ctx context.Context, labels []string) (*models.Nutrition, error)
}

type EdamamService struct {
	appID   string
	appKey  string
	baseURL string
	client  *http.Client
}

const edamamBaseURL = "https://api.edamam.com/api/nutrition-details"

func NewEdamamService(appID, appKey string) *EdamamService {
	return &EdamamService{
		appID:   appID,
		appKey:  appKey,
		baseURL: edamamBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type nutritionResponse struct {
	TotalNutrients map[string]struct {
		Label    string  `json:"label"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
	} `json:"totalNutrients"`
}

// Nutrient keys the meal summary is built from. The four required ones are
// rejected as malformed when missing; vitamins and minerals are best-effort.
var (
	requiredNutrients = []string{"ENERC_KCAL", "PROCNT", "CHOCDF", "FAT"}

	vitaminKeys = map[string]string{
		"VITA_RAE": "Vitamin A",
		"VITB6A":   "Vitamin B6",
		"VITB12":   "Vitamin B12",
		"VITC":     "Vitamin C",
		"VITD":     "Vitamin D",
		"TOCPHA":   "Vitamin E",
		"VITK1":    "Vitamin K",
	}
	mineralKeys = map[string]string{
		"CA": "Calcium",
		"FE": "Iron",
		"MG": "Magnesium",
		"K":  "Potassium",
		"NA": "Sodium",
		"ZN": "Zinc",
	}
)

func (s *EdamamService) Compute(ctx context.Context, labels []string) (*models.Nutrition, error) {
	payload := map[string]interface{}{
		"title": "meal",
		"ingr":  labels,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal nutrition payload: %w", err)
	}

	u := fmt.Sprintf("%s?app_id=%s&app_key=%s", s.baseURL, s.appID, s.appKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create nutrition request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call nutrition API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read nutrition response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nutrition API error %d: %s", resp.StatusCode, string(body))
	}

	var nr nutritionResponse
	if err := json.Unmarshal(body, &nr); err != nil {
		return nil, fmt.Errorf("failed to parse nutrition JSON: %w", err)
	}

	for _, key := range requiredNutrients {
		if _, ok := nr.TotalNutrients[key]; !ok {
			return nil, fmt.Errorf("malformed nutrition response: missing %s", key)
		}
	}

	nut := &models.Nutrition{
		Calories: nr.TotalNutrients["ENERC_KCAL"].Quantity,
		Macronutrients: models.Macronutrients{
			Protein:       nr.TotalNutrients["PROCNT"].Quantity,
			Carbohydrates: nr.TotalNutrients["CHOCDF"].Quantity,
			Fat:           nr.TotalNutrients["FAT"].Quantity,
		},
		Vitamins: micronutrients(nr, vitaminKeys),
		Minerals: micronutrients(nr, mineralKeys),
	}
	return nut, nil
}

func micronutrients(nr nutritionResponse, keys map[string]string) models.MicronutrientList {
	out := models.MicronutrientList{}
	for key, name := range keys {
		if v, ok := nr.TotalNutrients[key]; ok {
			out = append(out, models.Micronutrient{Name: name, Amount: v.Quantity})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
