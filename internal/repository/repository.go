package repository

import (
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/retry"
)

const (
	codeUniqueViolation     = "23505"
	codeInvalidTextValue    = "22P02"
	codeForeignKeyViolation = "23503"
)

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

func pgCode(err error) string {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return string(pgErr.Code)
	}
	return ""
}

// badID reports a malformed uuid in a lookup; callers treat it as "not found".
func badID(err error) bool {
	return pgCode(err) == codeInvalidTextValue
}
