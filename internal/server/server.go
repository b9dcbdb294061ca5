// Package server assembles repositories, use cases and handlers into a
// gRPC server.
package server

import (
	shiftv1 "github.com/fekuna/omnipos-shift-service/api/shift/v1"
	"github.com/fekuna/omnipos-shift-service/config"
	"github.com/fekuna/omnipos-shift-service/internal/cash"
	"github.com/fekuna/omnipos-shift-service/internal/movement"
	"github.com/fekuna/omnipos-shift-service/internal/payment"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/database"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/middleware"
	"github.com/fekuna/omnipos-shift-service/internal/timeline"
	"github.com/fekuna/omnipos-shift-service/internal/timeline/sink"
	"github.com/jmoiron/sqlx"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	adjH "github.com/fekuna/omnipos-shift-service/internal/adjustment/handler"
	adjRepoPkg "github.com/fekuna/omnipos-shift-service/internal/adjustment/repository"
	adjUCPkg "github.com/fekuna/omnipos-shift-service/internal/adjustment/usecase"

	catalogRepoPkg "github.com/fekuna/omnipos-shift-service/internal/catalog/repository"

	movH "github.com/fekuna/omnipos-shift-service/internal/movement/handler"
	movRepoPkg "github.com/fekuna/omnipos-shift-service/internal/movement/repository"
	movUCPkg "github.com/fekuna/omnipos-shift-service/internal/movement/usecase"

	payH "github.com/fekuna/omnipos-shift-service/internal/payment/handler"
	payRepoPkg "github.com/fekuna/omnipos-shift-service/internal/payment/repository"
	payUCPkg "github.com/fekuna/omnipos-shift-service/internal/payment/usecase"

	shiftH "github.com/fekuna/omnipos-shift-service/internal/shift/handler"
	shiftRepoPkg "github.com/fekuna/omnipos-shift-service/internal/shift/repository"
	shiftUCPkg "github.com/fekuna/omnipos-shift-service/internal/shift/usecase"

	tlH "github.com/fekuna/omnipos-shift-service/internal/timeline/handler"
	tlRepoPkg "github.com/fekuna/omnipos-shift-service/internal/timeline/repository"
	tlUCPkg "github.com/fekuna/omnipos-shift-service/internal/timeline/usecase"
)

// Deps is the infrastructure the server runs on. Drafts is required; leave
// the optional interfaces unset rather than assigning typed nils.
type Deps struct {
	DB        *sqlx.DB
	Drafts    movement.DraftStore
	RateCache payment.RateCache
	// Sinks receive timeline events after the database table.
	Sinks    []timeline.Sink
	Searcher timeline.Searcher
	Cash     config.CashConfig
	Logger   logger.ZapLogger
}

type Server struct {
	GRPC      *grpc.Server
	Health    *health.Server
	Movements movement.UseCase
}

func New(d *Deps) *Server {
	tx := database.NewTransactor(d.DB)

	// Repositories
	shiftRepo := shiftRepoPkg.NewSQLRepository(d.DB)
	movRepo := movRepoPkg.NewSQLRepository(d.DB)
	payRepo := payRepoPkg.NewSQLRepository(d.DB)
	adjRepo := adjRepoPkg.NewSQLRepository(d.DB)
	tlRepo := tlRepoPkg.NewSQLRepository(d.DB)
	catalogRepo := catalogRepoPkg.NewSQLRepository(d.DB)

	events := sink.NewMulti(append([]timeline.Sink{tlRepo}, d.Sinks...)...)

	// UseCases
	movUC := movUCPkg.NewMovementUseCase(movRepo, shiftRepo, catalogRepo, d.Drafts, tx, d.Logger)
	payUC := payUCPkg.NewPaymentUseCase(payRepo, shiftRepo, movUC, d.RateCache, tx, d.Cash.ConsistencyEpsilon, d.Logger)
	adjUC := adjUCPkg.NewAdjustmentUseCase(adjRepo, shiftRepo, tx, events, d.Cash.MinReasonLength, d.Logger)
	shiftUC := shiftUCPkg.NewShiftUseCase(
		shiftRepo, movUC, payUC, adjUC, tx, events,
		cash.Policy{
			MinCash:       d.Cash.MinCashRecommended,
			MinCoins:      d.Cash.MinCoinsRecommended,
			MaxDivergence: d.Cash.MaxCashDivergence,
		},
		cash.Bootstrap{Cash: d.Cash.BootstrapCash, Coins: d.Cash.BootstrapCoins},
		d.Logger,
	)
	tlUC := tlUCPkg.NewTimelineUseCase(tlRepo, d.Searcher, d.Logger)

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middleware.ContextInterceptor(),
			middleware.ErrorInterceptor(d.Logger),
		),
	)

	// Register Services
	shiftv1.RegisterShiftServiceServer(grpcServer, shiftH.NewShiftHandler(shiftUC, d.Logger))
	shiftv1.RegisterMovementServiceServer(grpcServer, movH.NewMovementHandler(movUC, d.Logger))
	shiftv1.RegisterPaymentServiceServer(grpcServer, payH.NewPaymentHandler(payUC, d.Logger))
	shiftv1.RegisterAdjustmentServiceServer(grpcServer, adjH.NewAdjustmentHandler(adjUC, d.Logger))
	shiftv1.RegisterTimelineServiceServer(grpcServer, tlH.NewTimelineHandler(tlUC, d.Logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	return &Server{GRPC: grpcServer, Health: healthServer, Movements: movUC}
}
