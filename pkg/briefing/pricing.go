package briefing

import "strings"

// approximate pricing per one million tokens, informational only
const (
	flashInputPerMillion  = 0.075
	flashOutputPerMillion = 0.30
	proInputPerMillion    = 3.50
	proOutputPerMillion   = 10.50
)

// EstimateCost derives a non-authoritative monetary estimate from the model
// tier and token counts. Pure function, no side effects.
func EstimateCost(model string, promptTokens, outputTokens int) float64 {
	inputPrice, outputPrice := proInputPerMillion, proOutputPerMillion
	if strings.Contains(strings.ToLower(model), "flash") {
		inputPrice, outputPrice = flashInputPerMillion, flashOutputPerMillion
	}

	inputCost := float64(promptTokens) / 1_000_000 * inputPrice
	outputCost := float64(outputTokens) / 1_000_000 * outputPrice

	return inputCost + outputCost
}
