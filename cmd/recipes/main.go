package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"philcali.me/recipebook/internal/api"
	"philcali.me/recipebook/internal/config"
	"philcali.me/recipebook/internal/controller"
	"philcali.me/recipebook/internal/data"
	recipeData "philcali.me/recipebook/internal/dynamodb/recipes"
	"philcali.me/recipebook/internal/mealdb"
	"philcali.me/recipebook/internal/notifications"
	"philcali.me/recipebook/internal/sns/services"
)

type App struct {
	Config     *config.Config
	Controller *controller.Controller
	Meals      mealdb.MealProvider
	Logger     *slog.Logger
}

func _loadAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.DynamoDB.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.DynamoDB.Region))
	}
	if endpoint := cfg.DynamoDB.Endpoint; endpoint != "" {
		opts = append(opts,
			awsconfig.WithEndpointResolver(aws.EndpointResolverFunc(
				func(service, region string) (aws.Endpoint, error) {
					if service == dynamodb.ServiceID {
						return aws.Endpoint{URL: endpoint}, nil
					}
					return aws.Endpoint{}, &aws.EndpointNotFoundError{}
				})),
			awsconfig.WithCredentialsProvider(credentials.StaticCredentialsProvider{
				Value: aws.Credentials{
					AccessKeyID:     "fake",
					SecretAccessKey: "fake",
					SessionToken:    "fake",
				}}),
		)
	}
	return awsconfig.LoadDefaultConfig(ctx, opts...)
}

func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	var awsCfg *aws.Config
	loadAWS := func() (aws.Config, error) {
		if awsCfg == nil {
			loaded, err := _loadAWSConfig(ctx, cfg)
			if err != nil {
				return loaded, fmt.Errorf("failed to load AWS config: %w", err)
			}
			awsCfg = &loaded
		}
		return *awsCfg, nil
	}

	var store data.RecipeStore
	switch cfg.Store.Backend {
	case config.BackendDynamoDB:
		loaded, err := loadAWS()
		if err != nil {
			return nil, err
		}
		store = recipeData.NewRecipeService(cfg.DynamoDB.Table, cfg.DynamoDB.Account, dynamodb.NewFromConfig(loaded))
	default:
		store = api.NewRecipeAPI(cfg.API.URL, &http.Client{Timeout: cfg.API.Timeout}, logger)
	}

	notifier := notifications.NewLogNotifier(logger)
	if topicArn := cfg.Notifications.TopicArn; topicArn != "" {
		loaded, err := loadAWS()
		if err != nil {
			return nil, err
		}
		notifier = services.NewNotificationSNSService(sns.NewFromConfig(loaded), topicArn)
	}

	return &App{
		Config: cfg,
		Controller: controller.NewController(store,
			controller.WithLogger(logger),
			controller.WithNotifier(notifier),
			controller.WithPolicy(controller.Policy{
				SurfaceLoadErrors:   cfg.Errors.SurfaceLoad,
				SurfaceDeleteErrors: cfg.Errors.SurfaceDelete,
			}),
		),
		Meals:  mealdb.NewMealClient(cfg.MealDB.URL, cfg.MealDB.Version, cfg.MealDB.Token, nil),
		Logger: logger,
	}, nil
}

func main() {
	if err := NewRootCommand().ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
