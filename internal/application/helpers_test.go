package application

import (
	"context"

	"github.com/stretchr/testify/mock"
)

func mockAnyContext() interface{} {
	return mock.MatchedBy(func(context.Context) bool { return true })
}

func mockAnyValue() interface{} {
	return mock.Anything
}
