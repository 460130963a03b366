package grpc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/gophnotes/internal/api"
	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/server/auth"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
)

type ctxKey string

const userKey ctxKey = "user"

const healthMethodPrefix = "/grpc.health.v1.Health/"

func isPublic(method string) bool {
	return method == api.PingMethod || strings.HasPrefix(method, healthMethodPrefix)
}

// currentUser returns the user resolved by sessionInterceptor.
func currentUser(ctx context.Context) *models.User {
	u, _ := ctx.Value(userKey).(*models.User)
	return u
}

func currentUserID(ctx context.Context) string {
	if u := currentUser(ctx); u != nil {
		return u.ID
	}
	return ""
}

func sessionToken(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(common.SessionTokenHeaderName)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// sessionInterceptor verifies the session token and resolves it to a local
// user, which handlers read back with currentUser.
func (s *GRPCServer) sessionInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if isPublic(info.FullMethod) {
		return handler(ctx, req)
	}

	token := sessionToken(ctx)
	if token == "" {
		return nil, s.toStatus(ctx, fmt.Errorf("%w: missing session token", common.ErrorUnauthenticated))
	}

	session, err := auth.VerifySession(token, s.identitySecret)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	user, err := s.identity.ResolveCurrentUser(ctx, session)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return handler(context.WithValue(ctx, userKey, user), req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	s.logger.Info(ctx, "rpc",
		"method", info.FullMethod,
		"duration", time.Since(start).String(),
		"code", status.Code(err).String(),
	)

	return resp, err
}
