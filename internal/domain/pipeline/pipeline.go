package pipeline

import "sort"

// Stage is one ordered position of an RD Station deal pipeline.
type Stage struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Nickname string `json:"nickname,omitempty"`
	Order    int    `json:"order"`
}

type Pipeline struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Stages []Stage `json:"deal_stages"`
}

// Ordered returns the stages sorted by their pipeline order. Ties keep the
// order the API returned them in.
func (p Pipeline) Ordered() []Stage {
	out := make([]Stage, len(p.Stages))
	copy(out, p.Stages)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Ordinal is the zero-based position of stageID within the ordered stages.
func (p Pipeline) Ordinal(stageID string) (int, bool) {
	for i, st := range p.Ordered() {
		if st.ID == stageID {
			return i, true
		}
	}
	return -1, false
}

func (p Pipeline) StageAt(ordinal int) (Stage, bool) {
	stages := p.Ordered()
	if ordinal < 0 || ordinal >= len(stages) {
		return Stage{}, false
	}
	return stages[ordinal], true
}

func (p Pipeline) HasStage(stageID string) bool {
	_, ok := p.Ordinal(stageID)
	return ok
}

// FindByStage returns the pipeline containing stageID.
func FindByStage(pipelines []Pipeline, stageID string) (Pipeline, bool) {
	for _, p := range pipelines {
		if p.HasStage(stageID) {
			return p, true
		}
	}
	return Pipeline{}, false
}

// Select picks the configured pipeline, or the first one when id is empty.
func Select(pipelines []Pipeline, id string) (Pipeline, bool) {
	if id == "" {
		if len(pipelines) == 0 {
			return Pipeline{}, false
		}
		return pipelines[0], true
	}
	for _, p := range pipelines {
		if p.ID == id {
			return p, true
		}
	}
	return Pipeline{}, false
}
