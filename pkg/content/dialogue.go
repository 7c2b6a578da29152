package content

// DialogueEffectKind tags a declarative dialogue option effect. The
// engine interprets these; the tree itself stays serializable data
// with no embedded behavior.
type DialogueEffectKind string

const (
	EffectGrantItem      DialogueEffectKind = "grant_item"
	EffectAdjustAffinity DialogueEffectKind = "adjust_affinity"
	EffectAdjustGold     DialogueEffectKind = "adjust_gold"
	EffectOpenShop       DialogueEffectKind = "open_shop"
	EffectGenerateQuest  DialogueEffectKind = "generate_quest"
	EffectRest           DialogueEffectKind = "rest"
)

// DialogueEffect is one declarative effect carried by an option.
type DialogueEffect struct {
	Kind   DialogueEffectKind `json:"kind"`
	ItemID string             `json:"item_id,omitempty"`
	Amount int                `json:"amount,omitempty"`
}

// DialogueOption is one selectable reply. Next names the node to
// branch to; an empty Next ends the interaction.
type DialogueOption struct {
	Text    string           `json:"text"`
	Effects []DialogueEffect `json:"effects,omitempty"`
	Next    string           `json:"next,omitempty"`
}

// DialogueNode is one beat of conversation.
type DialogueNode struct {
	ID      string           `json:"id"`
	Text    string           `json:"text"`
	Options []DialogueOption `json:"options"`
}

// Dialogue is a full conversation tree keyed by node id.
type Dialogue struct {
	ID    string                  `json:"id"`
	Start string                  `json:"start"`
	Nodes map[string]DialogueNode `json:"nodes"`
}

// Dialogues is the dialogue tree registry, keyed by dialogue id.
var Dialogues = map[string]Dialogue{
	"merchant_greet": {
		ID: "merchant_greet", Start: "hello",
		Nodes: map[string]DialogueNode{
			"hello": {
				ID:   "hello",
				Text: "Welcome, traveler! Finest goods this side of the river.",
				Options: []DialogueOption{
					{Text: "Show me your wares.",
						Effects: []DialogueEffect{{Kind: EffectOpenShop}}},
					{Text: "Heard any rumors?", Next: "rumors"},
					{Text: "Farewell."},
				},
			},
			"rumors": {
				ID:   "rumors",
				Text: "They say the ruins east of here glow on moonless nights. I sell torches, incidentally.",
				Options: []DialogueOption{
					{Text: "Interesting. Show me your wares.",
						Effects: []DialogueEffect{{Kind: EffectOpenShop}}},
					{Text: "Farewell."},
				},
			},
		},
	},
	"smith_greet": {
		ID: "smith_greet", Start: "hello",
		Nodes: map[string]DialogueNode{
			"hello": {
				ID:   "hello",
				Text: "Mind the sparks. Buying or browsing?",
				Options: []DialogueOption{
					{Text: "Buying.",
						Effects: []DialogueEffect{{Kind: EffectOpenShop}}},
					{Text: "Just browsing."},
				},
			},
		},
	},
	"baker_greet": {
		ID: "baker_greet", Start: "hello",
		Nodes: map[string]DialogueNode{
			"hello": {
				ID:   "hello",
				Text: "Fresh from the oven! Well. Fresh-ish.",
				Options: []DialogueOption{
					{Text: "Let me see what you have.",
						Effects: []DialogueEffect{{Kind: EffectOpenShop}}},
					{Text: "Here, take this flower.",
						Effects: []DialogueEffect{
							{Kind: EffectGrantItem, ItemID: ItemFlower, Amount: -1},
							{Kind: EffectAdjustAffinity, Amount: 5},
						}},
					{Text: "Good day."},
				},
			},
		},
	},
	"elder_greet": {
		ID: "elder_greet", Start: "hello",
		Nodes: map[string]DialogueNode{
			"hello": {
				ID:   "hello",
				Text: "Ah, the new face. The village always has work for willing hands.",
				Options: []DialogueOption{
					{Text: "I'm looking for work.",
						Effects: []DialogueEffect{{Kind: EffectGenerateQuest}},
						Next:    "work"},
					{Text: "Tell me about the village.", Next: "village"},
					{Text: "Farewell, elder."},
				},
			},
			"work": {
				ID:   "work",
				Text: "It's in the ledger. Come back when it's done and the reward is yours.",
				Options: []DialogueOption{
					{Text: "Anything else?", Next: "hello"},
					{Text: "I'll get to it."},
				},
			},
			"village": {
				ID:   "village",
				Text: "Thornbury has stood three hundred years. Wolves, goblins, two floods. We endure.",
				Options: []DialogueOption{
					{Text: "Impressive.", Next: "hello"},
					{Text: "Farewell."},
				},
			},
		},
	},
	"innkeeper_greet": {
		ID: "innkeeper_greet", Start: "hello",
		Nodes: map[string]DialogueNode{
			"hello": {
				ID:   "hello",
				Text: "Room's ten gold, and worth twice that for the quiet.",
				Options: []DialogueOption{
					{Text: "I'll take the room. (10 gold)",
						Effects: []DialogueEffect{
							{Kind: EffectAdjustGold, Amount: -10},
							{Kind: EffectRest},
						}},
					{Text: "Maybe later."},
				},
			},
		},
	},
	"alchemist_greet": {
		ID: "alchemist_greet", Start: "hello",
		Nodes: map[string]DialogueNode{
			"hello": {
				ID:   "hello",
				Text: "Don't touch the blue ones. The rest are for sale.",
				Options: []DialogueOption{
					{Text: "Show me.",
						Effects: []DialogueEffect{{Kind: EffectOpenShop}}},
					{Text: "Another time."},
				},
			},
		},
	},
}
