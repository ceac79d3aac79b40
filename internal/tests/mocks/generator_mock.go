package mocks

import (
	"context"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// GeneratorMock stands in for an eino chat model and records each request.
type GeneratorMock struct {
	GenerateFunc func(ctx context.Context, input []*schema.Message) (*schema.Message, error)

	Requests [][]*schema.Message
}

func (m *GeneratorMock) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	m.Requests = append(m.Requests, input)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, input)
	}
	return schema.AssistantMessage("ok", nil), nil
}
