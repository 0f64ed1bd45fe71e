package openai

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector returns canned payloads for local runs without an API key.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) GenerateQuestions(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating clarifying questions")

	return `{
		"questions": [
			{
				"question": "What is the installation method?",
				"options": ["Chased into wall", "Surface trunking", "Under floorboards"]
			},
			{
				"question": "What type of property is it?",
				"options": ["Flat", "Terraced house", "Detached house"]
			},
			{
				"question": "Is this new work or replacing existing fittings?",
				"options": ["New installation", "Like-for-like replacement"]
			}
		]
	}`, nil
}

func (m *MockConnector) GenerateEstimate(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating work breakdown")

	return `{
		"jobs": [
			{
				"job": "Install MK Logic Plus double socket",
				"confidence": "Medium",
				"timeRange": {"min": 1, "max": 1.5},
				"materials": [
					{"name": "MK Logic Plus 13A Double Socket (K2747WHI)", "priceRange": {"min": 8.5, "max": 12}},
					{"name": "3m of 2.5mm² Twin & Earth (6242Y) Cable", "priceRange": {"min": 4, "max": 6}},
					{"name": "47mm Galvanised Steel Backbox", "priceRange": {"min": 1.2, "max": 2}}
				]
			},
			{
				"job": "Install fire-rated downlights",
				"confidence": "Low",
				"timeRange": {"min": 2, "max": 3},
				"materials": [
					{"name": "4x Collingwood H2 Pro 550 Fire-Rated Downlights", "priceRange": {"min": 80, "max": 110}},
					{"name": "5m of 1.5mm² Twin & Earth (6242Y) Cable", "priceRange": {"min": 5, "max": 8}}
				]
			}
		]
	}`, nil
}
