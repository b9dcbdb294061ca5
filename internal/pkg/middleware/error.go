package middleware

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-shift-service/internal/apperror"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/i18n"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
)

const (
	ErrorDomain   = "shift.omnipos"
	defaultLocale = "en"
)

// ErrorInterceptor turns use case errors into gRPC statuses. Errors that are
// not *apperror.Error are logged and reported as Internal without detail.
func ErrorInterceptor(log logger.ZapLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		if _, ok := status.FromError(err); ok {
			return resp, err
		}

		var appErr *apperror.Error
		if !errors.As(err, &appErr) {
			log.Error("unhandled error", zap.String("method", info.FullMethod), zap.Error(err))
			appErr = &apperror.Error{Kind: apperror.KindInternal, Code: apperror.CodeUnexpected, Message: "an unexpected error occurred"}
		}
		return nil, ToStatus(appErr, LocaleFromContext(ctx))
	}
}

// ToStatus builds the wire status for e, localized for acceptLanguage.
func ToStatus(e *apperror.Error, acceptLanguage string) error {
	msg, locale, ok := i18n.Localize(string(e.Code), e.Metadata, acceptLanguage)
	if !ok {
		msg, locale = e.Message, defaultLocale
	}

	code := e.Kind.GRPCCode()
	st := status.New(code, msg)

	details := []protoadapt.MessageV1{
		&errdetails.ErrorInfo{Reason: string(e.Code), Domain: ErrorDomain, Metadata: e.Metadata},
		&errdetails.LocalizedMessage{Locale: locale, Message: msg},
	}
	if e.Field != "" {
		details = append(details, &errdetails.BadRequest{
			FieldViolations: []*errdetails.BadRequest_FieldViolation{{Field: e.Field, Description: e.Message}},
		})
	}

	withDetails, err := st.WithDetails(details...)
	if err != nil {
		return st.Err()
	}
	return withDetails.Err()
}

// Code extracts the apperror code carried in a status' ErrorInfo, or "".
func Code(err error) apperror.Code {
	st, ok := status.FromError(err)
	if !ok || st.Code() == codes.OK {
		return ""
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.Domain == ErrorDomain {
			return apperror.Code(info.Reason)
		}
	}
	return ""
}
