package repository

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// isConditionalCheckFailed reports whether a conditional write lost its
// guard. Callers treat this as "lost the race", not as a failure.
func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

// statusGuard builds a `#st = :s0 OR #st = :s1 ...` condition over the
// allowed source statuses. Values are returned keyed for the expression
// attribute value map.
func statusGuard(from []string) (string, map[string]types.AttributeValue) {
	parts := make([]string, 0, len(from))
	values := make(map[string]types.AttributeValue, len(from))
	for i, s := range from {
		key := fmt.Sprintf(":from%d", i)
		parts = append(parts, "#st = "+key)
		values[key] = &types.AttributeValueMemberS{Value: s}
	}
	return "(" + strings.Join(parts, " OR ") + ")", values
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}
