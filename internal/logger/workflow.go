package logger

import (
	tlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"
)

// WorkflowFields returns the execution identifiers of a workflow as zap fields
func WorkflowFields(ctx workflow.Context) []zap.Field {
	info := workflow.GetInfo(ctx)
	if info == nil {
		return nil
	}
	name := info.WorkflowType.Name
	if name == "" {
		name = "unknown"
	}
	return []zap.Field{
		zap.String("workflow_type", name),
		zap.String("workflow_id", info.WorkflowExecution.ID),
		zap.String("run_id", info.WorkflowExecution.RunID),
		zap.String("task_queue", info.TaskQueueName),
	}
}

// TemporalAdapter adapts a zap logger to Temporal's log.Logger interface
type TemporalAdapter struct {
	logger *zap.Logger
}

// NewTemporalAdapter returns a Temporal logger writing to the given zap logger
func NewTemporalAdapter(l *zap.Logger) tlog.Logger {
	if l == nil {
		l = Default()
	}
	return &TemporalAdapter{logger: l}
}

func (t *TemporalAdapter) Debug(msg string, keyvals ...interface{}) {
	t.logger.Debug(msg, keyvalsToFields(keyvals)...)
}

func (t *TemporalAdapter) Info(msg string, keyvals ...interface{}) {
	t.logger.Info(msg, keyvalsToFields(keyvals)...)
}

func (t *TemporalAdapter) Warn(msg string, keyvals ...interface{}) {
	t.logger.Warn(msg, keyvalsToFields(keyvals)...)
}

func (t *TemporalAdapter) Error(msg string, keyvals ...interface{}) {
	t.logger.Error(msg, keyvalsToFields(keyvals)...)
}

// keyvalsToFields converts Temporal's key1, val1, key2, val2 pairs.
// A trailing key without value is dropped.
func keyvalsToFields(keyvals []interface{}) []zap.Field {
	if len(keyvals)%2 != 0 {
		keyvals = keyvals[:len(keyvals)-1]
	}
	fields := make([]zap.Field, 0, len(keyvals)/2)
	for i := 0; i < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		fields = append(fields, zap.Any(key, keyvals[i+1]))
	}
	return fields
}
