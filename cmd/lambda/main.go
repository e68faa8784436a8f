package main

import (
	"context"
	"log"
	"time"

	"image-resizer/internal/app"
	lambdadelivery "image-resizer/internal/delivery/lambda"
	"image-resizer/internal/pkg/config"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/fx"
)

func main() {
	config.LoadDotEnv(".env")

	var handler *lambdadelivery.Handler
	fxApp := fx.New(
		app.Module,
		fx.Provide(lambdadelivery.NewHandler),
		fx.Populate(&handler),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := fxApp.Start(startCtx); err != nil {
		log.Fatalf("startup failed: %v", err)
	}

	// the runtime owns the process from here on
	awslambda.Start(handler.Handle)
}
