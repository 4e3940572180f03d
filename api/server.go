package api

import (
	"context"
	"fmt"
	"os"

	"github.com/alex-pricope/gift-selection-service/api/controllers"
	"github.com/alex-pricope/gift-selection-service/api/transport"
	"github.com/alex-pricope/gift-selection-service/logging"
	"github.com/alex-pricope/gift-selection-service/storage"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
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
	records, err := s.newRecordStorage(context.Background())
	if err != nil {
		logging.Log.Errorf("failed to create record storage: %v", err)
		panic("failed to create record storage")
	}

	r := s.NewEngine(records)

	//Do not run lambda helper locally
	if os.Getenv("APP_ENV") == "local" {
		startLocal(r, s.config.Port)
	} else {
		startLambda(r)
	}
}

// NewEngine builds the router with every controller registered on top of records.
func (s *Server) NewEngine(records storage.RecordStorage) *gin.Engine {
	r := transport.NewRouter(s.config.Mode, s.config.AllowOrigins)

	selectionStorage := storage.NewSelectionStorage(records)

	//Register controllers
	selectionController := controllers.NewSelectionController(selectionStorage)
	selectionController.RegisterRoutes(r)
	healthController := controllers.NewHealthController(storage.SystemClock{})
	healthController.RegisterRoutes(r)

	return r
}

func (s *Server) newRecordStorage(ctx context.Context) (storage.RecordStorage, error) {
	switch s.config.Backend {
	case BackendFile:
		logging.Log.Infof("Storing selections in file %s", s.config.FilePath)
		return &storage.FileRecordStorage{Path: s.config.FilePath}, nil
	case BackendDynamoDB:
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load AWS config: %w", err)
		}
		client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
			if s.config.Endpoint != "" {
				o.BaseEndpoint = aws.String(s.config.Endpoint)
			}
		})
		logging.Log.Infof("Storing selections in DynamoDB table %s (item %s)", s.config.TableName, s.config.ItemKey)
		return &storage.DynamoRecordStorage{
			Client:    client,
			TableName: s.config.TableName,
			ItemKey:   s.config.ItemKey,
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", s.config.Backend)
	}
}

// StartLambda sets up for AWS Lambda
func startLambda(engine *gin.Engine) {
	ginLambda := ginadapter.NewV2(engine)

	handler := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		logging.Log.Infof("Lambda handler triggered on path: %s", req.RawPath)
		return ginLambda.ProxyWithContext(ctx, req)
	}

	logging.Log.Info("Starting lambda")
	lambda.Start(handler)
}

// StartLocal starts a normal HTTP server on the configured port
func startLocal(engine *gin.Engine, port int) {
	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))
	logging.Log.Info("Available endpoints:")
	logging.Log.Info("  POST /api/select-gift - Save gift selection")
	logging.Log.Info("  GET  /api/selections  - Get all selections")
	logging.Log.Info("  GET  /api/aggregate   - Get aggregated statistics")
	logging.Log.Info("  GET  /api/health      - Health check")

	if err := engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
