package game

// Group names used across the registry. The player is deliberately absent
// from GroupVisible: the camera scrolls that group, and the player is
// drawn separately on top.
const (
	GroupVisible    = "visible"
	GroupObstacles  = "obstacles"
	GroupDamsels    = "damsels"
	GroupEnemies    = "enemies"
	GroupFriendlies = "friendlies"
)

// RescuedCounter is the gamestate counter tracking saved damsels.
const RescuedCounter = "damsels_rescued"

// AllRescuedFlag is set once every damsel on the map has been saved.
const AllRescuedFlag = "all_damsels_rescued"

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}
