package routers

import (
	"clinic-portal/internal/app/config"
	"clinic-portal/internal/app/delivery/http/controllers"
	"clinic-portal/internal/app/delivery/http/middlewares"
	"clinic-portal/internal/pkg/constvars"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	accessLogger *logrus.Logger,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	dashboardController *controllers.DashboardController,
	patientController *controllers.PatientController,
	healthController *controllers.HealthController,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.ErrorHandler)
	if accessLogger != nil {
		router.Use(middlewares.RequestLogger(internalConfig.App, accessLogger))
	}
	router.Use(middlewares.Logging)
	router.Use(middlewares.SecurityHeaders)
	router.Use(middlewares.BodyLimit)

	router.Get(constvars.RouteHealth, healthController.Health)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.LoadSession)

		attachAuthRoutes(r, internalConfig, middlewares, authController, dashboardController)

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireAuthentication)
			attachPatientRoutes(r, dashboardController, patientController)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, constvars.RouteHome, http.StatusFound)
	})
}

func attachAuthRoutes(
	router chi.Router,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	dashboardController *controllers.DashboardController,
) {
	router.Get(constvars.RouteHome, authController.Home)

	router.Route(constvars.RouteLogin, func(r chi.Router) {
		r.Use(middlewares.LoginIPRateLimit())
		r.Use(middlewares.LimitLoginAttempts)
		r.Get("/", authController.LoginPage)
		r.Post("/", authController.Login)
	})

	router.Post(constvars.RouteLogout, dashboardController.Logout)

	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.AllowedOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Group(func(r chi.Router) {
		r.Use(cors.Handler(corsOptions))
		r.Get(constvars.RouteAPISession, authController.SessionStatus)
		r.Options(constvars.RouteAPISession, func(w http.ResponseWriter, r *http.Request) {})
	})
}

func attachPatientRoutes(
	router chi.Router,
	dashboardController *controllers.DashboardController,
	patientController *controllers.PatientController,
) {
	router.Get(constvars.RouteDashboard, dashboardController.Dashboard)

	router.Get(constvars.RoutePatient, patientController.NewPatientForm)
	router.Post(constvars.RoutePatient, patientController.CreatePatient)
	router.Get(constvars.RoutePatientByID, patientController.EditPatientForm)
	router.Post(constvars.RoutePatientByID, patientController.UpdatePatient)
}
