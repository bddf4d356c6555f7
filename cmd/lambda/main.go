// =============================================================================
// Lambda: news-check
// =============================================================================
//
// フィードの新着記事を確認し、チェックポイントを更新して通知する Lambda 関数
//
// 環境変数:
//   - TABLE_NAME:        チェックポイントのテーブル名 (必須)
//   - TOPIC_ARN:         通知先 SNS トピック ARN (必須)
//   - FEED_URL:          フィード URL (デフォルト: https://spitz-web.com/news/feed)
//   - IDENTITY_STRATEGY: timestamp / numeric_id (デフォルト: timestamp)
//   - AWS_SAM_LOCAL:     SAM Local 実行時に AWS_ENDPOINT_URL を使う
//
// =============================================================================
package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"

	"rssNotifier/internal/application"
	"rssNotifier/internal/interfaces/bootstrap"
	"rssNotifier/internal/interfaces/config"
)

// Response はLambdaレスポンス
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

type responseBody struct {
	Message string `json:"message"`
}

type runner interface {
	Run(ctx context.Context) *application.Result
}

// newHandler returns the Lambda handler. Failures are reported through the
// status code only; the handler never returns an error.
func newHandler(svc runner) func(context.Context, json.RawMessage) (Response, error) {
	return func(ctx context.Context, event json.RawMessage) (Response, error) {
		log.Printf("Received event: %s", string(event))

		if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
			ctx = application.WithRunID(ctx, lc.AwsRequestID)
		}

		result := svc.Run(ctx)
		if result.Err != nil {
			log.Printf("Run failed (%s): %v", result.Outcome, result.Err)
		}

		return newResponse(result), nil
	}
}

func newResponse(result *application.Result) Response {
	body, err := json.Marshal(responseBody{Message: result.Message})
	if err != nil {
		body = []byte(`{"message":"Error: failed to encode response"}`)
	}
	return Response{StatusCode: result.StatusCode, Body: string(body)}
}

func main() {
	// CloudWatch がタイムスタンプを付与する
	log.SetFlags(0)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	app, err := bootstrap.Build(context.Background(), cfg, bootstrap.Options{})
	if err != nil {
		log.Fatal("Failed to initialize:", err)
	}
	defer app.Close()

	lambda.Start(newHandler(app.Service))
}
