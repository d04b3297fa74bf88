package tags

import "github.com/yohamta/donburi"

var (
	Pet = donburi.NewTag().SetName("Pet")
)
