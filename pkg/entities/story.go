package entities

// StoryRarity grades a story in the shop
type StoryRarity string

const (
	RarityCommon    StoryRarity = "Common"
	RarityRare      StoryRarity = "Rare"
	RarityEpic      StoryRarity = "Epic"
	RarityLegendary StoryRarity = "Legendary"
)

// StoryCategory groups stories by theme
type StoryCategory string

const (
	CategoryChampionship StoryCategory = "Championship"
	CategoryRivalry      StoryCategory = "Rivalry"
	CategoryRecord       StoryCategory = "Record"
	CategoryTragedy      StoryCategory = "Tragedy"
	CategoryComeback     StoryCategory = "Comeback"
	CategoryInnovation   StoryCategory = "Innovation"
)

// FreeStoryID is unlocked for every player from the start
const FreeStoryID = 0

// Story is a purchasable racing legend
type Story struct {
	ID       int           `json:"id"`
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Year     string        `json:"year"`
	IsFree   bool          `json:"is_free"`
	Price    int64         `json:"price"`
	Rarity   StoryRarity   `json:"rarity"`
	Category StoryCategory `json:"category"`
}
