package v1

import (
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/jwt"
	"career-compass/internal/usecase"
	"career-compass/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Deps is everything the v1 route tree needs, built once by the app
// container.
type Deps struct {
	JWT jwt.Service

	Employees usecase.EmployeeUsecase
	Matches   usecase.MatchUsecase
	Careers   usecase.CareerUsecase
	Plans     usecase.LearningPlanUsecase
	Trending  usecase.TrendingUsecase
	Positions usecase.PositionUsecase

	WS *ws.Handler
}

func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	protected := r
	if deps.JWT != nil {
		authMw := middleware.NewAuthMiddleware(deps.JWT)
		protected = r.Group("", authMw.Middleware())
	}

	employees := protected.Group("/employees")
	handler.NewEmployeeHandler(deps.Employees).RegisterRoutes(employees)
	handler.NewMatchHandler(deps.Matches).RegisterRoutes(employees)
	handler.NewCareerHandler(deps.Careers).RegisterRoutes(employees)
	handler.NewLearningPlanHandler(deps.Plans).RegisterRoutes(employees)

	skills := protected.Group("/skills")
	handler.NewSkillHandler(deps.Plans, deps.Trending).RegisterRoutes(skills)

	positions := protected.Group("/positions")
	handler.NewPositionHandler(deps.Positions).RegisterRoutes(positions)
}
