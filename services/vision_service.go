package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// VisionService calls an OpenAI-compatible vision endpoint to turn a meal
// photo into a structured nutrition estimate. It is the system's single
// inference boundary: not-food classification comes from the same call.
type VisionService struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewVisionService() *VisionService {
	model := os.Getenv("OPENAI_VISION_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com"
	}
	return &VisionService{
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// MealAnalysis is the structured result of one photo analysis.
type MealAnalysis struct {
	Success       bool    `json:"success"`
	FailureReason string  `json:"failure_reason,omitempty"`
	Name          string  `json:"name"`
	Calories      float64 `json:"calories"`
	Carbs         float64 `json:"carbs"`
	Protein       float64 `json:"protein"`
	Fat           float64 `json:"fat"`
	Confidence    float64 `json:"confidence"`
	Notes         string  `json:"notes,omitempty"`
}

const analysisPrompt = `You are a nutritionist specialized in food analysis.
Analyze the meal photo and estimate its nutrition.

If the image does NOT contain food (objects, landscapes, people), return:
{"success": false, "failure_reason": "not_food", "name": "", "calories": 0, "carbs": 0, "protein": 0, "fat": 0, "confidence": 0}

If it contains food, return JSON with:
{
  "success": true,
  "name": "descriptive dish name",
  "calories": estimated kcal,
  "carbs": grams,
  "protein": grams,
  "fat": grams,
  "confidence": 0.0 to 1.0,
  "notes": "nutrition tips (optional)"
}

Respond with ONLY the JSON, no additional text.`

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// AnalyzeMealPhoto sends a base64-encoded JPEG to the vision model. The two
// failure modes are kept distinct: ErrNotFood when the model classified the
// image as non-food (user retakes the photo), ErrInference for transport or
// parse failures (caller may retry). On any error no MealAnalysis is returned,
// so callers can never persist a fabricated zero-calorie meal.
func (s *VisionService) AnalyzeMealPhoto(ctx context.Context, base64Image string) (*MealAnalysis, error) {
	payload := map[string]any{
		"model": s.model,
		"messages": []map[string]any{
			{"role": "system", "content": analysisPrompt},
			{
				"role": "user",
				"content": []map[string]any{
					{
						"type": "image_url",
						"image_url": map[string]any{
							"url":    "data:image/jpeg;base64," + base64Image,
							"detail": "low",
						},
					},
					{"type": "text", "text": "Analyze this meal and return the nutrition values as JSON."},
				},
			},
		},
		"max_tokens": 500,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", ErrInference, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrInference, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInference, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrInference, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: API error %d: %s", ErrInference, resp.StatusCode, string(body))
	}

	var cr chatCompletionResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return nil, fmt.Errorf("%w: parse response: %v", ErrInference, err)
	}
	if len(cr.Choices) == 0 || cr.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("%w: empty completion", ErrInference)
	}

	analysis, err := parseAnalysisContent(cr.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	if !analysis.Success {
		if analysis.FailureReason == "not_food" {
			return nil, ErrNotFood
		}
		return nil, fmt.Errorf("%w: model reported failure %q", ErrInference, analysis.FailureReason)
	}
	return analysis, nil
}

// parseAnalysisContent extracts the JSON object from the completion text.
// Models occasionally wrap the JSON in prose or code fences, so the parse
// starts at the first '{' and ends at the last '}'.
func parseAnalysisContent(content string) (*MealAnalysis, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("%w: no JSON in completion", ErrInference)
	}

	var analysis MealAnalysis
	if err := json.Unmarshal([]byte(content[start:end+1]), &analysis); err != nil {
		return nil, fmt.Errorf("%w: parse analysis JSON: %v", ErrInference, err)
	}
	if analysis.Confidence < 0 || analysis.Confidence > 1 {
		return nil, fmt.Errorf("%w: confidence %v out of range", ErrInference, analysis.Confidence)
	}
	return &analysis, nil
}
