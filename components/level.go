package components

import (
	"github.com/automoto/hopper/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level   *leveldata.Level
	Cleared bool
}

var Level = donburi.NewComponentType[LevelData]()
