package testutil

import (
	"context"

	"kpicollector/internal/collect"
)

// MockSession is a mock implementation of the Session interface for testing
type MockSession struct {
	AttributeFunc func(ctx context.Context, name string) (any, error)
}

// Attribute implements the Session interface
func (m *MockSession) Attribute(ctx context.Context, name string) (any, error) {
	if m.AttributeFunc != nil {
		return m.AttributeFunc(ctx, name)
	}
	return nil, nil
}

// NewMockSession creates a simple mock session with a predefined value per
// attribute name
func NewMockSession(values map[string]any) collect.Session {
	return &MockSession{
		AttributeFunc: func(_ context.Context, name string) (any, error) {
			return values[name], nil
		},
	}
}

// MockBuilder is a mock implementation of the Builder interface for testing
type MockBuilder struct {
	SubjectsFunc   func() []string
	OperationsFunc func() []string
	GetFunc        func(ctx context.Context, op string) error
	SummaryFunc    func() string
	CollectFunc    func() map[string]any

	// GetCalls records the operations dispatched through Get
	GetCalls []string
}

// Subjects implements the Builder interface
func (m *MockBuilder) Subjects() []string {
	if m.SubjectsFunc != nil {
		return m.SubjectsFunc()
	}
	return nil
}

// Operations implements the Builder interface
func (m *MockBuilder) Operations() []string {
	if m.OperationsFunc != nil {
		return m.OperationsFunc()
	}
	return nil
}

// Get implements the Builder interface
func (m *MockBuilder) Get(ctx context.Context, op string) error {
	m.GetCalls = append(m.GetCalls, op)
	if m.GetFunc != nil {
		return m.GetFunc(ctx, op)
	}
	return nil
}

// Summary implements the Builder interface
func (m *MockBuilder) Summary() string {
	if m.SummaryFunc != nil {
		return m.SummaryFunc()
	}
	return "Product parts: "
}

// Collect implements the Builder interface
func (m *MockBuilder) Collect() map[string]any {
	if m.CollectFunc != nil {
		return m.CollectFunc()
	}
	return map[string]any{}
}
