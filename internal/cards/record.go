package cards

// Record is one card's normalized metadata as persisted in the database
// files. Desirability and Tradable start at their zero values and are only
// populated by the desirability merge.
type Record struct {
	Number       string `json:"card_number"`
	Name         string `json:"card_name"`
	Rarity       int    `json:"card_rarity"`
	Set          string `json:"card_set"`
	SetName      string `json:"card_set_name"`
	SetBaseName  string `json:"card_set_base_name"`
	ExpansionID  string `json:"expansion_id"`
	Desirability int    `json:"card_desirability"`
	Tradable     bool   `json:"card_tradable"`
	Obtainable   bool   `json:"card_obtainable"`
}
