package entities

// Character is the part of a character sheet the combat core reads: the display
// name keyed by account
type Character struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
}

// CombatStats is the sheet's combat block keyed by character. Joining a fight
// copies CurrentHP, MaxHP and ArmorClass; later edits here do not reach the fight.
type CombatStats struct {
	CharacterID     string `json:"character_id"`
	CurrentHP       int32  `json:"current_hp"`
	MaxHP           int32  `json:"max_hp"`
	ArmorClass      int32  `json:"armor_class"`
	Speed           int32  `json:"speed,omitempty"`
	InitiativeBonus int32  `json:"initiative_bonus,omitempty"`
}
