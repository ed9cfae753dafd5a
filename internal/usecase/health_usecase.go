package usecase

import "context"

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	environment string
}

func NewHealthUsecase(environment string) HealthUsecase {
	return &healthUsecase{environment: environment}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	return map[string]string{
		"status":      "healthy",
		"environment": u.environment,
	}
}
