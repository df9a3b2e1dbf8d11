package api

import (
	"context"

	"github.com/osoares/promptforge/internal/models"
)

// MockClient is a mock implementation of Generator for testing.
type MockClient struct {
	// Mock return values
	GenerateVal *models.PromptResult
	GenerateErr error

	// Call counters/recorders
	GenerateCalled int
	LastText       string
	LastTarget     models.TargetModel
	LastHistory    []models.Turn
}

// Ensure MockClient implements Generator
var _ Generator = (*MockClient)(nil)

func (m *MockClient) Generate(_ context.Context, text string, target models.TargetModel, history []models.Turn) (*models.PromptResult, error) {
	m.GenerateCalled++
	m.LastText = text
	m.LastTarget = target
	m.LastHistory = history
	if m.GenerateErr != nil {
		return nil, m.GenerateErr
	}
	return m.GenerateVal, nil
}
