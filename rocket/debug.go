package rocket

// handleDebugKeys is only reached in builds made with -tags debug.
func (c *Controller) handleDebugKeys() {
	if c.deps.Input.Pressed(ActionSkipScene) {
		c.log.Printf("rocket: debug skip to next scene")
		c.deps.Scenes.LoadNextScene()
	}
	if c.deps.Input.Pressed(ActionToggleCollisions) {
		c.collisionsDisabled = !c.collisionsDisabled
		c.log.Printf("rocket: debug collisions disabled=%v", c.collisionsDisabled)
	}
}
