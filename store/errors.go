package store

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

func IsDuplicateKeyError(err error) bool {
	var e mongo.ServerError
	if errors.As(err, &e) {
		return e.HasErrorCode(11000) || e.HasErrorCode(11001) || e.HasErrorCode(12582) ||
			e.HasErrorCodeWithMessage(16460, " E11000 ")
	}
	return false
}
