package mapper

import (
	"encoding/json"

	"math-agent-be/internal/entity"
	"math-agent-be/internal/model"

	"gorm.io/datatypes"
)

type InteractionMapper struct{}

func NewInteractionMapper() *InteractionMapper {
	return &InteractionMapper{}
}

func (m *InteractionMapper) ToEntity(i *model.Interaction) *entity.Interaction {
	if i == nil {
		return nil
	}

	var solution []string
	if len(i.Solution) > 0 {
		_ = json.Unmarshal(i.Solution, &solution)
	}

	var webResults []entity.WebResultSnapshot
	if len(i.WebSearchResults) > 0 {
		_ = json.Unmarshal(i.WebSearchResults, &webResults)
	}

	return &entity.Interaction{
		Id:               i.Id,
		Question:         i.Question,
		Solution:         solution,
		Source:           i.Source,
		KbQuery:          i.KbQuery,
		WebSearchQuery:   i.WebSearchQuery,
		WebSearchResults: webResults,
		ContextUsed:      i.ContextUsed,
		LlmModel:         i.LlmModel,
		CreatedAt:        i.CreatedAt,
	}
}

func (m *InteractionMapper) ToModel(i *entity.Interaction) *model.Interaction {
	if i == nil {
		return nil
	}

	solution, _ := json.Marshal(i.Solution)

	var webResults datatypes.JSON
	if len(i.WebSearchResults) > 0 {
		webResults, _ = json.Marshal(i.WebSearchResults)
	}

	return &model.Interaction{
		Id:               i.Id,
		Question:         i.Question,
		Solution:         datatypes.JSON(solution),
		Source:           i.Source,
		KbQuery:          i.KbQuery,
		WebSearchQuery:   i.WebSearchQuery,
		WebSearchResults: webResults,
		ContextUsed:      i.ContextUsed,
		LlmModel:         i.LlmModel,
		CreatedAt:        i.CreatedAt,
	}
}

func (m *InteractionMapper) ToEntities(interactions []*model.Interaction) []*entity.Interaction {
	entities := make([]*entity.Interaction, len(interactions))
	for i, item := range interactions {
		entities[i] = m.ToEntity(item)
	}
	return entities
}
