package gamedata

// ItemDef is the text for one item type, loaded from JSON.
type ItemDef struct {
	ID          string   `json:"id"`              // Matches entity.ItemType.String()
	Name        string   `json:"name"`            // With article (e.g., "a flare gun")
	Aliases     []string `json:"aliases"`         // Words the player may use to name it
	Description string   `json:"description"`     // Shown on "look at"
	Spent       string   `json:"spent,omitempty"` // Notice for a used single-use item
}

// Key returns the definition's identifier.
func (d ItemDef) Key() string { return d.ID }

// Names returns the words that resolve to this item type.
func (d ItemDef) Names() []string { return d.Aliases }

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}
