package benchmark

import (
	"github.com/ticklog/ticklog/core"
	"github.com/ticklog/ticklog/handler"
)

type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	core.PutEntry(e)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}

// CanRecycleEntry is false because Handle recycles the entry itself.
func (h *noopHandler) CanRecycleEntry() bool {
	return false
}
