package system

import (
	"github.com/lixenwraith/starlight-reaver/component"
	"github.com/lixenwraith/starlight-reaver/core"
	"github.com/lixenwraith/starlight-reaver/engine"
	"github.com/lixenwraith/starlight-reaver/parameter"
)

// NotificationSystem counts down queued messages; each entry is timed independently
type NotificationSystem struct {
	world *engine.World
}

func NewNotificationSystem(world *engine.World) engine.System {
	return &NotificationSystem{world: world}
}

func (s *NotificationSystem) Init() {}

func (s *NotificationSystem) Name() string {
	return "notification"
}

func (s *NotificationSystem) Priority() int {
	return parameter.PriorityNotification
}

func (s *NotificationSystem) Update() {
	dt := s.world.Resource.Time.DeltaTime
	s.world.Notifications.RemoveIf(func(_ core.Entity, n *component.NotificationComponent) bool {
		n.Life -= dt
		return n.Life <= 0
	})
}
