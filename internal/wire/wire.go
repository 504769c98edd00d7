package wire

import (
	"PedGuard/internal/api"
	"PedGuard/internal/api/config"
	"PedGuard/internal/api/handler"
	"PedGuard/internal/job"
	"PedGuard/internal/pkg/cron"
	"PedGuard/internal/pkg/es"
	pkgmongo "PedGuard/internal/pkg/mongo"
	"PedGuard/internal/pkg/oauth"
	"PedGuard/internal/repository"
	"PedGuard/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer holds every top-level component the process runs.
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoDB *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	accidentRepo := repository.NewAccidentRepo(db)
	suggestionRepo := repository.NewSuggestionRepo(db)
	actionRepo := repository.NewSuggestionActionRepo(db)
	districtRepo := repository.NewDistrictRepo(db)
	crosswalkRepo := repository.NewCrosswalkRepo(db)
	signalRepo := repository.NewSignalRepo(db)
	hotspotRepo := repository.NewHotspotRepo(db)
	kpiRepo := repository.NewKpiRepo(db)
	investmentRepo := repository.NewInvestmentRepo(db)
	alertRepo := pkgmongo.NewAlertRepo(mongoDB)

	// search is optional: without a cluster the listing engine degrades
	// to store-side LIKE matching
	var esRepo es.SuggestionRepo
	if cfg.Elastic.Enabled {
		esRepo = es.NewSuggestionRepo(es.Client)
	}

	authService := service.NewAuthService(userRepo, oauth.NewClient())
	userService := service.NewUserService(userRepo)
	accidentService := service.NewAccidentService(accidentRepo)
	suggestionService := service.NewSuggestionService(suggestionRepo, actionRepo, esRepo, alertRepo)
	actionService := service.NewSuggestionActionService(actionRepo, suggestionRepo, userRepo)
	districtService := service.NewDistrictService(districtRepo)
	mapService := service.NewMapService(crosswalkRepo, signalRepo, hotspotRepo)
	kpiService := service.NewKpiService(kpiRepo)
	dashboardService := service.NewDashboardService(crosswalkRepo, signalRepo, hotspotRepo, suggestionRepo)
	alertService := service.NewAlertService(alertRepo)
	investmentService := service.NewInvestmentService(investmentRepo)

	handlers := &api.HandlersGroup{
		AuthHandler:             handler.NewAuthHandler(authService),
		UserHandler:             handler.NewUserHandler(userService),
		AccidentHandler:         handler.NewAccidentHandler(accidentService),
		SuggestionHandler:       handler.NewSuggestionHandler(suggestionService, actionService),
		SuggestionActionHandler: handler.NewSuggestionActionHandler(actionService),
		DistrictHandler:         handler.NewDistrictHandler(districtService),
		MapHandler:              handler.NewMapHandler(mapService),
		KpiHandler:              handler.NewKpiHandler(kpiService),
		DashboardHandler:        handler.NewDashboardHandler(dashboardService),
		AlertHandler:            handler.NewAlertHandler(alertService),
		InvestmentHandler:       handler.NewInvestmentHandler(investmentService),
	}

	router := api.SetupRouter(handlers)

	metricJob := job.NewSuggestionMetricJob(suggestionService, actionService)
	cronMgr := cron.NewCronManager(metricJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
