package quest

// Kind distinguishes the two generated quest archetypes.
type Kind string

const (
	Kill    Kind = "kill"
	Collect Kind = "collect"
)

// Status is the lifecycle of a quest held by the player. Claimed quests
// leave the active list entirely; only their id is retained.
type Status string

const (
	Active    Status = "active"
	Completed Status = "completed"
)

// Quest is a generated objective. Target is matched by name against
// defeated enemies (kill) or collected items (collect).
type Quest struct {
	ID             string `json:"id"`
	Kind           Kind   `json:"kind"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Target         string `json:"target"`
	AmountRequired int    `json:"amount_required"`
	AmountCurrent  int    `json:"amount_current"`
	RewardExp      int    `json:"reward_exp"`
	RewardGold     int    `json:"reward_gold"`
	Status         Status `json:"status"`
}
