package systems

import (
	cfg "github.com/automoto/cubecombat/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateBack returns a system that leaves a screen for the one built
// by createScene when the back action is pressed.
func NewUpdateBack(sceneChanger SceneChanger, createScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if input.JustPressed(cfg.ActionBack) {
			sceneChanger.ChangeScene(createScene())
		}
	}
}
