package content

// QuestSeed is one row of the fixed quest tables. Target is an enemy
// name for kill quests and an item id for collect quests.
type QuestSeed struct {
	Target      string `json:"target"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// KillQuestSeeds feed the kill half of the quest generator.
var KillQuestSeeds = []QuestSeed{
	{Target: "Wolf", Title: "Cull the Packs",
		Description: "Wolves have been circling the pastures. Thin them out."},
	{Target: "Goblin", Title: "Goblin Trouble",
		Description: "Goblins keep raiding the forest road. Put a stop to it."},
	{Target: "Skeleton", Title: "The Restless Dead",
		Description: "Something stirs in the old ruins. Lay the bones to rest."},
	{Target: "Bandit", Title: "Road Tolls",
		Description: "Bandits are taxing travelers. Collect a refund."},
}

// CollectQuestSeeds feed the collect half of the quest generator.
var CollectQuestSeeds = []QuestSeed{
	{Target: ItemFlower, Title: "A Posy for the Fair",
		Description: "Gather wildflowers for the festival garlands."},
	{Target: ItemDust, Title: "Glimmering Dust",
		Description: "The alchemist needs dust. Fresh, if possible."},
	{Target: ItemPelt, Title: "Warm Pelts",
		Description: "Winter is coming and the tanner is short on pelts."},
	{Target: ItemFang, Title: "Trophies of the Wild",
		Description: "The lodge pays for proof of dangerous kills."},
}
