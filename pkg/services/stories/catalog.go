package stories

import (
	"github.com/fadedpez/onexrace/pkg/entities"
)

// Catalog is the read-only story shop
type Catalog struct {
	stories []entities.Story
	byID    map[int]entities.Story
}

// NewCatalog builds a catalog over the given stories
func NewCatalog(stories []entities.Story) *Catalog {
	c := &Catalog{
		stories: make([]entities.Story, len(stories)),
		byID:    make(map[int]entities.Story, len(stories)),
	}
	copy(c.stories, stories)
	for _, s := range stories {
		c.byID[s.ID] = s
	}
	return c
}

// DefaultCatalog returns the eighteen stories sold in the game
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultStories)
}

// All returns every story in catalog order
func (c *Catalog) All() []entities.Story {
	out := make([]entities.Story, len(c.stories))
	copy(out, c.stories)
	return out
}

// Len returns the number of stories
func (c *Catalog) Len() int {
	return len(c.stories)
}

// ByID looks up a story
func (c *Catalog) ByID(id int) (entities.Story, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// ByCategory returns the stories in a category
func (c *Catalog) ByCategory(category entities.StoryCategory) []entities.Story {
	return c.filter(func(s entities.Story) bool { return s.Category == category })
}

// ByRarity returns the stories of a rarity
func (c *Catalog) ByRarity(rarity entities.StoryRarity) []entities.Story {
	return c.filter(func(s entities.Story) bool { return s.Rarity == rarity })
}

func (c *Catalog) filter(keep func(entities.Story) bool) []entities.Story {
	var out []entities.Story
	for _, s := range c.stories {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

var defaultStories = []entities.Story{
	{ID: 0, Title: "The Legend Begins", Subtitle: "Birth of Formula 1", Year: "1950", IsFree: true, Price: 0, Rarity: entities.RarityCommon, Category: entities.CategoryChampionship},
	{ID: 1, Title: "Monaco Magic", Subtitle: "The Jewel of F1", Year: "1929-Present", Price: 500, Rarity: entities.RarityRare, Category: entities.CategoryChampionship},
	{ID: 2, Title: "Senna vs Prost", Subtitle: "The Greatest Rivalry", Year: "1988-1993", Price: 750, Rarity: entities.RarityEpic, Category: entities.CategoryRivalry},
	{ID: 3, Title: "Rain Master", Subtitle: "Senna's Wet Weather Genius", Year: "1984-1994", Price: 600, Rarity: entities.RarityRare, Category: entities.CategoryRecord},
	{ID: 4, Title: "The Comeback King", Subtitle: "Niki Lauda's Miracle Return", Year: "1976-1977", Price: 900, Rarity: entities.RarityEpic, Category: entities.CategoryComeback},
	{ID: 5, Title: "Speed of Sound", Subtitle: "Breaking Barriers", Year: "2004-2016", Price: 450, Rarity: entities.RarityRare, Category: entities.CategoryRecord},
	{ID: 6, Title: "The Perfect Lap", Subtitle: "Jim Clark's Mastery", Year: "1960-1968", Price: 800, Rarity: entities.RarityEpic, Category: entities.CategoryChampionship},
	{ID: 7, Title: "Rush", Subtitle: "Hunt vs Lauda 1976", Year: "1976", Price: 1200, Rarity: entities.RarityLegendary, Category: entities.CategoryRivalry},
	{ID: 8, Title: "The Black Weekend", Subtitle: "Imola 1994 Tragedy", Year: "1994", Price: 1500, Rarity: entities.RarityLegendary, Category: entities.CategoryTragedy},
	{ID: 9, Title: "The Professor", Subtitle: "Alain Prost's Calculated Genius", Year: "1980-1993", Price: 700, Rarity: entities.RarityEpic, Category: entities.CategoryChampionship},
	{ID: 10, Title: "Ground Effect Revolution", Subtitle: "The Lotus Innovation", Year: "1977-1982", Price: 650, Rarity: entities.RarityEpic, Category: entities.CategoryInnovation},
	{ID: 11, Title: "The Flying Finn", Subtitle: "Mika Häkkinen's Precision", Year: "1998-2001", Price: 850, Rarity: entities.RarityEpic, Category: entities.CategoryRivalry},
	{ID: 12, Title: "Schumacher Era", Subtitle: "The Red Baron's Dominance", Year: "1991-2006", Price: 1000, Rarity: entities.RarityLegendary, Category: entities.CategoryChampionship},
	{ID: 13, Title: "Silver Arrows Return", Subtitle: "Mercedes Modern Dominance", Year: "2014-2021", Price: 550, Rarity: entities.RarityRare, Category: entities.CategoryChampionship},
	{ID: 14, Title: "Brazil 2008", Subtitle: "Hamilton's Miracle Championship", Year: "2008", Price: 950, Rarity: entities.RarityEpic, Category: entities.CategoryChampionship},
	{ID: 15, Title: "The Iceman Cometh", Subtitle: "Kimi Räikkönen's Cool Victory", Year: "2007", Price: 750, Rarity: entities.RarityEpic, Category: entities.CategoryComeback},
	{ID: 16, Title: "Turbocharged Era", Subtitle: "The 1980s Power Revolution", Year: "1977-1988", Price: 1100, Rarity: entities.RarityLegendary, Category: entities.CategoryInnovation},
	{ID: 17, Title: "Canada 2011", Subtitle: "Jenson Button's Impossible Win", Year: "2011", Price: 1300, Rarity: entities.RarityLegendary, Category: entities.CategoryComeback},
}
