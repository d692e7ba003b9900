package gamedata

// RadioLines are the scripted radio exchanges.
type RadioLines struct {
	MaydayWithSurvivors string `json:"maydayWithSurvivors"`
	MaydayAlone         string `json:"maydayAlone"`
	Reserved            string `json:"reserved"`
	Acknowledged        string `json:"acknowledged"`
}

// StoryDef holds the narrative set pieces, loaded from story.json.
type StoryDef struct {
	Title         string     `json:"title"`
	Help          []string   `json:"help"`
	Prologue      []string   `json:"prologue"` // One passage per prologue stage
	RescueArrived string     `json:"rescueArrived"`
	Ending        string     `json:"ending"`
	Radio         RadioLines `json:"radio"`
}

// PrologueStage returns the passage for a stage, or "" past the prologue.
func (s *StoryDef) PrologueStage(stage int) string {
	if stage < 0 || stage >= len(s.Prologue) {
		return ""
	}
	return s.Prologue[stage]
}

// LoadStory loads the story from the embedded story.json file.
func LoadStory() (StoryDef, error) {
	return Load[StoryDef]("story.json")
}
