package application

import (
	"context"

	"github.com/bnema/course-tutor/internal/domain"
)

// Tutor answers one student question. Greetings skip the catalog fetch.
type Tutor struct {
	courses *CourseService
	router  *Router
}

func NewTutor(courses *CourseService, router *Router) *Tutor {
	return &Tutor{courses: courses, router: router}
}

func (t *Tutor) Answer(ctx context.Context, question string) string {
	if ClassifyQuestion(question) == domain.DecisionGreeting {
		return t.router.Route(ctx, question, "")
	}
	return t.router.Route(ctx, question, t.courses.CatalogContext(ctx))
}
