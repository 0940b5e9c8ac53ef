package services

import (
	"github.com/prometheus/client_golang/prometheus"

	"todo-app/internal/errors"
)

var (
	TaskOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "todo_task_operations_total",
			Help: "Task service operations by outcome",
		},
		[]string{"operation", "result"},
	)
)

func init() {
	prometheus.MustRegister(TaskOperations)
}

// observe records the outcome of a service operation
func observe(operation string, err error) {
	TaskOperations.WithLabelValues(operation, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	if appErr, ok := errors.AsAppError(err); ok {
		return appErr.Type.String()
	}
	return "error"
}
