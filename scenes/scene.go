// Package scenes holds the desktop client's screens.
package scenes

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Options configure a play session started from the client.
type Options struct {
	LevelPath  string
	ConfigPath string // YAML overlay watched for hot reload; empty disables it
	AppName    string // gdata application name; empty keeps progress in memory
	Debug      bool   // outline collision objects
}
