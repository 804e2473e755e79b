package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockQuerierForTest creates a new mock Querier wired to the test lifecycle
func NewMockQuerierForTest(t *testing.T) *MockQuerier {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockQuerier(ctrl)
}
