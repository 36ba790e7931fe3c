// Package advisor wraps the external shopping-assistant service. It is
// strictly text in, text out: callers hand over the user's message, the
// client supplies catalog context, and any failure at all collapses to
// a canned apology rather than an error.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/electrohub/storefront-api/models"
)

// Fallback is what shoppers see whenever the assistant is unreachable.
const Fallback = "I'm sorry, I'm having trouble connecting to my brain right now. Please try again!"

const systemPrompt = `You are "ElectroBot", a smart shopping assistant for ElectroHub. Here is our catalog: %s. Help the user find products or answer technical questions. Be brief and professional.`

type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

func New(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

// catalogItem is the slim product digest sent as assistant context.
type catalogItem struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// Advise relays the user's message together with a catalog digest and
// returns the assistant's reply, or Fallback on any failure.
func (c *Client) Advise(ctx context.Context, message string, products []models.Product) string {
	if c.endpoint == "" {
		return Fallback
	}

	digest := make([]catalogItem, 0, len(products))
	for _, p := range products {
		digest = append(digest, catalogItem{Name: p.Name, Category: string(p.Category), Price: p.Price})
	}
	digestJSON, err := json.Marshal(digest)
	if err != nil {
		log.Error().Err(err).Msg("encode advisor catalog digest")
		return Fallback
	}

	payload := map[string]interface{}{
		"system_instruction": map[string]interface{}{
			"parts": []map[string]string{{"text": fmt.Sprintf(systemPrompt, digestJSON)}},
		},
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": message}}},
		},
		"generationConfig": map[string]float64{"temperature": 0.7},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("encode advisor request")
		return Fallback
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		log.Error().Err(err).Msg("build advisor request")
		return Fallback
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn().Err(err).Msg("advisor unreachable")
		return Fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Msg("advisor returned non-OK")
		return Fallback
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		log.Warn().Err(err).Msg("read advisor response")
		return Fallback
	}

	text := gjson.GetBytes(buf.Bytes(), "candidates.0.content.parts.0.text").String()
	if text == "" {
		log.Warn().Msg("advisor response had no text candidate")
		return Fallback
	}
	return text
}
