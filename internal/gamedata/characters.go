package gamedata

// CharacterDef is the text for one member of the cast, loaded from JSON.
type CharacterDef struct {
	ID          string    `json:"id"`          // Matches entity.CharacterID.String()
	Name        string    `json:"name"`        // Display name (e.g., "Prof. Smart")
	Aliases     []string  `json:"aliases"`     // Words or phrases the player may use
	Description string    `json:"description"` // Shown on "look at" while healthy
	Responses   [2]string `json:"responses"`   // Replies to "talk to"
	Question    string    `json:"question"`    // Opens a chatter exchange
	Answers     [2]string `json:"answers"`     // Replies in a chatter exchange
	Exclamation string    `json:"exclamation"` // Cry when hurt or bitten
	Resting     string    `json:"resting"`     // Cue while the infection takes hold
	Garbled     string    `json:"garbled"`     // What is left of their speech once turned
}

// Key returns the definition's identifier.
func (d CharacterDef) Key() string { return d.ID }

// Names returns the words that resolve to this character.
func (d CharacterDef) Names() []string { return d.Aliases }

// ZombieName returns the name used once the character has turned.
func (d CharacterDef) ZombieName() string { return "Zombie " + d.Name }

// CharactersFile represents the structure of characters.json.
type CharactersFile struct {
	Characters []CharacterDef `json:"characters"`
}

// LoadCharacters loads character definitions from the embedded characters.json file.
func LoadCharacters() ([]CharacterDef, error) {
	file, err := Load[CharactersFile]("characters.json")
	if err != nil {
		return nil, err
	}
	return file.Characters, nil
}
