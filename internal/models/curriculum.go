package models

import "fmt"

// igcseTopics — шаблон тем программы IGCSE
var igcseTopics = []string{
	"Number",
	"Algebra and graphs",
	"Coordinate geometry",
	"Geometry",
	"Mensuration",
	"Trigonometry",
	"Transformations and vectors",
	"Probability",
	"Statistics",
}

// mypTopics — шаблон тем программы MYP
var mypTopics = []string{
	"Numerical and abstract reasoning",
	"Thinking with models",
	"Spatial reasoning",
	"Reasoning with data",
}

// TopicTemplate возвращает стартовый список тем для учебной программы.
// Используется при создании ученика и при самом первом заполнении базы.
func TopicTemplate(curriculum Curriculum) []TopicProgress {
	var names []string
	switch curriculum {
	case CurriculumMYP:
		names = mypTopics
	default:
		names = igcseTopics
	}

	topics := make([]TopicProgress, 0, len(names))
	for i, name := range names {
		topics = append(topics, TopicProgress{
			ID:     fmt.Sprintf("topic-%d", i+1),
			Name:   name,
			Status: "not_started",
		})
	}
	return topics
}
