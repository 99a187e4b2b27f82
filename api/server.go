package api

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Utiqano/football/api/controllers"
	"github.com/Utiqano/football/api/transport"
	"github.com/Utiqano/football/auth"
	"github.com/Utiqano/football/engine"
	"github.com/Utiqano/football/logging"
	"github.com/Utiqano/football/metrics"
	"github.com/Utiqano/football/notify"
	"github.com/Utiqano/football/storage"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	r := transport.NewRouter(gin.DebugMode)

	participationStorage, votesStorage, userStorage, sessionStorage := s.buildStorage()

	hub := notify.NewHub()
	provider := auth.NewStoreProvider(userStorage, sessionStorage,
		time.Duration(s.config.SessionTTLHours)*time.Hour)
	cycleEngine := engine.New(participationStorage, votesStorage, hub)
	sessions := engine.NewSessionContext(cycleEngine, hub, provider)
	defer sessions.Close()

	//Register controllers
	authController := controllers.NewAuthController(provider)
	authController.RegisterRoutes(r)
	participationController := controllers.NewParticipationController(cycleEngine, provider)
	participationController.RegisterRoutes(r)
	mvpController := controllers.NewMvpController(cycleEngine, provider)
	mvpController.RegisterRoutes(r)
	dashboardController := controllers.NewDashboardController(sessions, hub, provider)
	dashboardController.RegisterRoutes(r)
	adminController := controllers.NewAdminController(userStorage)
	adminController.RegisterRoutes(r)

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	//Do not run lambda helper locally
	if os.Getenv("APP_ENV") == "local" {
		startLocal(r, s.config.Port)
	} else {
		startLambda(r)
	}
}

func (s *Server) buildStorage() (storage.ParticipationStorage, storage.MvpVoteStorage, storage.UserStorage, storage.SessionStorage) {
	if s.config.UseMemory {
		logging.Log.Warn("Using in-memory storage, all data is lost on restart")
		return storage.NewMemoryParticipationStorage(),
			storage.NewMemoryMvpVoteStorage(),
			storage.NewMemoryUserStorage(),
			storage.NewMemorySessionStorage()
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logging.Log.Errorf("failed to load AWS config: %v", err)
		panic("failed to load AWS config")
	}
	dynamoClient := dynamodb.NewFromConfig(cfg)

	return &storage.DynamoParticipationStorage{
			Client:    dynamoClient,
			TableName: s.config.TableNameParticipation,
		},
		&storage.DynamoMvpVoteStorage{
			Client:    dynamoClient,
			TableName: s.config.TableNameMvpVotes,
		},
		&storage.DynamoUserStorage{
			Client:    dynamoClient,
			TableName: s.config.TableNameUsers,
		},
		&storage.DynamoSessionStorage{
			Client:    dynamoClient,
			TableName: s.config.TableNameSessions,
		}
}

// startLambda sets up for AWS Lambda
func startLambda(engine *gin.Engine) {
	ginLambda := ginadapter.NewV2(engine)

	handler := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		logging.Log.Infof("Lambda handler triggered on path: %s", req.RawPath)
		return ginLambda.ProxyWithContext(ctx, req)
	}

	logging.Log.Info("Starting lambda")
	lambda.Start(handler)
}

// startLocal starts a normal HTTP server
func startLocal(engine *gin.Engine, port int) {
	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))

	if err := engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
