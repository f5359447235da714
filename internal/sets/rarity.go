package sets

// rarityTiers maps the rarity code embedded in local filenames to its
// numeric tier.
var rarityTiers = map[string]int{
	"C":   1,  // 1 diamond
	"U":   2,  // 2 diamonds
	"R":   3,  // 3 diamonds
	"RR":  4,  // EX / 4 diamonds
	"AR":  5,  // 1 star
	"SR":  6,  // 2 star
	"SAR": 7,  // rainbow 2 star
	"IM":  8,  // immersive / 3 star
	"UR":  9,  // crown rare
	"S":   10, // shiny
	"SSR": 11, // double shiny
	"IR":  12, // immersive / triple shiny
}

// Rarity returns the numeric tier for a rarity code. Unlisted codes map to
// 0 (unknown), never an error.
func Rarity(code string) int {
	return rarityTiers[code]
}
