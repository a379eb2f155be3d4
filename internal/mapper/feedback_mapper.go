package mapper

import (
	"math-agent-be/internal/entity"
	"math-agent-be/internal/model"
)

type FeedbackMapper struct{}

func NewFeedbackMapper() *FeedbackMapper {
	return &FeedbackMapper{}
}

func (m *FeedbackMapper) ToEntity(f *model.Feedback) *entity.Feedback {
	if f == nil {
		return nil
	}
	return &entity.Feedback{
		Id:            f.Id,
		InteractionId: f.InteractionId,
		FeedbackType:  f.FeedbackType,
		Notes:         f.Notes,
		CreatedAt:     f.CreatedAt,
	}
}

func (m *FeedbackMapper) ToModel(f *entity.Feedback) *model.Feedback {
	if f == nil {
		return nil
	}
	return &model.Feedback{
		Id:            f.Id,
		InteractionId: f.InteractionId,
		FeedbackType:  f.FeedbackType,
		Notes:         f.Notes,
		CreatedAt:     f.CreatedAt,
	}
}

func (m *FeedbackMapper) ToEntities(feedbacks []*model.Feedback) []*entity.Feedback {
	entities := make([]*entity.Feedback, len(feedbacks))
	for i, f := range feedbacks {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
