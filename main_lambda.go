//go:build lambda

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

var lambdaLogger = slog.New(slog.NewJSONHandler(os.Stderr, nil))

func handler(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	req, err := decodeSolveRequest(body, DefaultConfig())
	if err != nil {
		return errResp(400, err.Error())
	}

	logger := lambdaLogger.With("request_id", event.RequestContext.RequestID)
	rep := NewSolver(req.exitus, req.reagents, req.cfg).WithLogger(logger).Solve(ctx)

	respJSON, err := json.Marshal(rep.Output())
	if err != nil {
		logger.Error("encode report", "err", err)
		return errResp(500, "encode report")
	}
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	lambda.Start(handler)
}
