package entities

// Achievement is a one-time reward unlocked by gameplay events
type Achievement struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IconName    string `json:"icon_name"`
	Reward      int64  `json:"reward"`
	IsUnlocked  bool   `json:"is_unlocked"`
}

// AchievementCatalog returns the sixteen achievements, all locked, ordered by id
func AchievementCatalog() []Achievement {
	return []Achievement{
		{ID: 0, Title: "First Win", Description: "Win your first race", IconName: "trophy", Reward: 200},
		{ID: 1, Title: "High Roller", Description: "Bet 500 coins in a single race", IconName: "dollarsign", Reward: 300},
		{ID: 2, Title: "Lucky Streak", Description: "Win 3 races in a row", IconName: "star", Reward: 500},
		{ID: 3, Title: "Story Collector", Description: "Unlock 5 race stories", IconName: "book", Reward: 400},

		{ID: 4, Title: "Champion", Description: "Win 10 races", IconName: "trophy", Reward: 600},
		{ID: 5, Title: "Legend", Description: "Win 25 races", IconName: "trophy", Reward: 1000},
		{ID: 6, Title: "Perfect Week", Description: "Win 7 races in a row", IconName: "star", Reward: 800},

		{ID: 7, Title: "Penny Pincher", Description: "Win with a 10 coin bet", IconName: "dollarsign", Reward: 150},
		{ID: 8, Title: "All In", Description: "Win with maximum bet", IconName: "dollarsign", Reward: 500},
		{ID: 9, Title: "Risk Taker", Description: "Total bets over 5000 coins", IconName: "dollarsign", Reward: 700},

		{ID: 10, Title: "Historian", Description: "Unlock 10 race stories", IconName: "book", Reward: 800},
		{ID: 11, Title: "Librarian", Description: "Unlock all race stories", IconName: "book", Reward: 1500},
		{ID: 12, Title: "Chest Hunter", Description: "Open 20 chests", IconName: "box", Reward: 600},

		{ID: 13, Title: "Comeback Kid", Description: "Win after 3 losses in a row", IconName: "bolt", Reward: 400},
		{ID: 14, Title: "Money Bags", Description: "Have 10,000 coins at once", IconName: "dollarsign", Reward: 1000},
		{ID: 15, Title: "Dedicated Racer", Description: "Play for 7 days in a row", IconName: "calendar", Reward: 700},
	}
}
