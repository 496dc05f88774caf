package models

// PromptPool is a categorized collection of prompt strings. Life and Career
// are the required mode categories; the remaining sections are optional and
// contribute nothing when absent.
type PromptPool struct {
	Life      []string            `json:"life"`
	Career    []string            `json:"career"`
	TimeAware map[string][]string `json:"timeAware,omitempty"`
	Moods     map[string][]string `json:"moods,omitempty"`
	Seasonal  *SeasonalPrompts    `json:"seasonal,omitempty"`
}

// SeasonalPrompts declares the pool's current season and its prompt sets
type SeasonalPrompts struct {
	Current string              `json:"current"`
	Prompts map[string][]string `json:"prompts"`
}

// CurrentSeasonPrompts returns the prompts for the declared current season,
// or nil if the pool declares none
func (p PromptPool) CurrentSeasonPrompts() []string {
	if p.Seasonal == nil || p.Seasonal.Current == "" {
		return nil
	}
	return p.Seasonal.Prompts[p.Seasonal.Current]
}
