package scenes

// SceneChanger swaps the active scene. The game implements it.
type SceneChanger interface {
	ChangeScene(scene interface{})
}
