package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"semtint/config"
	"semtint/embedding"
	"semtint/refstore"
	"semtint/resolver"
)

type colorPayload struct {
	Text string `json:"text"`
}

type colorResponse struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

type lambdaHandler struct {
	resolver *resolver.Resolver
	logger   *slog.Logger
}

func (l *lambdaHandler) handler(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var payload colorPayload
	err := json.Unmarshal([]byte(request.Body), &payload)
	if err != nil {
		l.logger.ErrorContext(ctx, "failed to parse request body", slog.Any("error", err))
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusBadRequest,
			Body:       err.Error(),
		}, err
	}

	color, err := l.resolver.Resolve(ctx, payload.Text)
	if err != nil {
		l.logger.ErrorContext(ctx, "failed to resolve a color for the input text", slog.Any("error", err))
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Body:       "something went wrong resolving a color",
		}, err
	}

	responseBytes, err := json.Marshal(colorResponse{R: color.R, G: color.G, B: color.B})
	if err != nil {
		l.logger.ErrorContext(ctx, "serialize response", slog.Any("error", err))
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Body:       "something went wrong building the response",
		}, err
	}

	return events.APIGatewayProxyResponse{
		Body:       string(responseBytes),
		StatusCode: 200,
	}, nil
}

func main() {
	configPath := os.Getenv("SEMTINT_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		panic(err)
	}

	provider, err := embedding.New(context.Background(), &cfg.Embedder)
	if err != nil {
		panic(err)
	}

	store, err := refstore.Load(cfg.StorePath, provider.Dimension())
	if err != nil {
		panic(err)
	}

	handler := lambdaHandler{
		resolver: resolver.New(provider, store),
		logger:   slog.Default(),
	}

	lambda.Start(handler.handler)
}
