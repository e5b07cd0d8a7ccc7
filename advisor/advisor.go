// Package advisor produces a plain-language reading of a comparison report
// using Gemini.
package advisor

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

const systemInstruction = `You are a financial analyst. The user sends you a
markdown report comparing the mutual fund they hold against an alternative
fund, replayed over their own transaction history. Explain in a short,
plain-language paragraph what the numbers say: which fund would have served
them better, by how much, and whether the volatility difference changes the
picture. Do not give investment advice, only read the report.`

// Explain sends the comparison report to Gemini and returns its reading.
func Explain(ctx context.Context, client *genai.Client, reportMarkdown string) (string, error) {
	chat, err := client.Chats.Create(ctx, model, &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}, nil)
	if err != nil {
		return "", err
	}
	resp, err := chat.Send(ctx, &genai.Part{Text: reportMarkdown})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from %s", model)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
