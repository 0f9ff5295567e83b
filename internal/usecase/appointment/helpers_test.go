package appointment

import (
	"go.uber.org/zap"

	"github.com/petcarebr/petshop-scheduler/internal/notify"
)

func newTestDispatcher() *notify.Dispatcher {
	return notify.NewDispatcher(zap.NewNop(), 16)
}
