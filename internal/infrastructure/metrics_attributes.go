package infrastructure

import (
	"fmt"

	"github.com/architeacher/svc-project-messaging/internal/domain"
	"go.opentelemetry.io/otel/attribute"
)

const (
	httpMethodKey     = "http.method"
	httpPathKey       = "http.path"
	httpStatusCodeKey = "http.status_code"
	statusKey         = "status"
	contentTypeKey    = "messaging.content_type"
	outcomeKey        = "messaging.outcome"
	redeliveredKey    = "messaging.redelivered"
	operationKey      = "messaging.operation"
	workerStateKey    = "worker.state"
	commandKey        = "command"
)

func HTTPMethodAttr(method string) attribute.KeyValue {
	return attribute.String(httpMethodKey, method)
}

func HTTPPathAttr(path string) attribute.KeyValue {
	return attribute.String(httpPathKey, path)
}

func HTTPStatusCodeAttr(code int) attribute.KeyValue {
	return attribute.String(httpStatusCodeKey, fmt.Sprintf("%d", code))
}

func StatusAttr(status string) attribute.KeyValue {
	return attribute.String(statusKey, status)
}

func ContentTypeAttr(contentType string) attribute.KeyValue {
	return attribute.String(contentTypeKey, contentType)
}

func OutcomeAttr(outcome domain.ProcessingOutcome) attribute.KeyValue {
	return attribute.String(outcomeKey, string(outcome))
}

func RedeliveredAttr(redelivered bool) attribute.KeyValue {
	return attribute.Bool(redeliveredKey, redelivered)
}

func OperationAttr(operation string) attribute.KeyValue {
	return attribute.String(operationKey, operation)
}

func WorkerStateAttr(state domain.WorkerState) attribute.KeyValue {
	return attribute.String(workerStateKey, state.String())
}

func CommandAttr(key string) attribute.KeyValue {
	return attribute.String(commandKey, key)
}
