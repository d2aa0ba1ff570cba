package middleware

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var info = &grpc.UnaryServerInfo{FullMethod: "/catalog.v1.CategoryService/GetCategoryTree"}

func TestContextInterceptor(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(
		HeaderRequestID, "req-1",
		HeaderAcceptLanguage, "vi-VN",
	))

	var gotID, gotLocale string
	_, err := ContextInterceptor()(ctx, nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		gotID = RequestID(ctx)
		gotLocale = Locale(ctx)
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "req-1", gotID)
	assert.Equal(t, "vi-VN", gotLocale)
}

func TestContextInterceptor_GeneratesRequestID(t *testing.T) {
	var gotID, gotLocale string
	_, err := ContextInterceptor()(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		gotID = RequestID(ctx)
		gotLocale = Locale(ctx)
		return nil, nil
	})
	require.NoError(t, err)
	assert.Len(t, gotID, 36)
	assert.Equal(t, "en", gotLocale)
}

func TestRecoveryInterceptor(t *testing.T) {
	_, err := RecoveryInterceptor(logger.NewNop())(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		panic("boom")
	})
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))
}
