package errors

import (
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
)

// ErrorDomain identifies our errors inside ErrorInfo details
const ErrorDomain = "fight-tracker"

var grpcCodeByCode = map[Code]codes.Code{
	CodeOK:                 codes.OK,
	CodeCanceled:           codes.Canceled,
	CodeInvalidArgument:    codes.InvalidArgument,
	CodeDeadlineExceeded:   codes.DeadlineExceeded,
	CodeNotFound:           codes.NotFound,
	CodeAlreadyExists:      codes.AlreadyExists,
	CodePermissionDenied:   codes.PermissionDenied,
	CodeResourceExhausted:  codes.ResourceExhausted,
	CodeFailedPrecondition: codes.FailedPrecondition,
	CodeAborted:            codes.Aborted,
	CodeOutOfRange:         codes.OutOfRange,
	CodeUnimplemented:      codes.Unimplemented,
	CodeInternal:           codes.Internal,
	CodeUnavailable:        codes.Unavailable,
	CodeDataLoss:           codes.DataLoss,
	CodeUnauthenticated:    codes.Unauthenticated,
}

var codeByGRPCCode = func() map[codes.Code]Code {
	out := make(map[codes.Code]Code, len(grpcCodeByCode))
	for c, g := range grpcCodeByCode {
		out[g] = c
	}
	return out
}()

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	if g, ok := grpcCodeByCode[c]; ok {
		return g
	}
	return codes.Unknown
}

// ToGRPCError converts an error to a gRPC status error. The reason and
// metadata travel as ErrorInfo; field violations travel as BadRequest.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)

	var details []protoadapt.MessageV1
	if len(customErr.Meta) > 0 {
		details = append(details, &errdetails.ErrorInfo{
			Reason:   string(customErr.Reason()),
			Domain:   ErrorDomain,
			Metadata: stringifyMeta(customErr.Meta),
		})
	}
	if fv := Violations(customErr); len(fv) > 0 {
		br := &errdetails.BadRequest{}
		for _, v := range fv {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       v.Field,
				Description: v.Description,
			})
		}
		details = append(details, br)
	}

	if len(details) > 0 {
		if withDetails, detailErr := st.WithDetails(details...); detailErr == nil {
			st = withDetails
		}
	}
	return st.Err()
}

// FromGRPCError converts a gRPC error back to our error, restoring the reason,
// metadata and field violations it carried
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	code, ok := codeByGRPCCode[st.Code()]
	if !ok {
		code = CodeInternal
	}
	customErr := &Error{Code: code, Message: st.Message()}

	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			if d.GetDomain() != ErrorDomain {
				continue
			}
			for k, v := range d.GetMetadata() {
				customErr.WithMeta(k, v)
			}
			if d.GetReason() != "" {
				customErr.WithReason(Reason(d.GetReason()))
			}
		case *errdetails.BadRequest:
			var fv []FieldViolation
			for _, v := range d.GetFieldViolations() {
				fv = append(fv, FieldViolation{Field: v.GetField(), Description: v.GetDescription()})
			}
			if len(fv) > 0 {
				customErr.WithMeta(MetaKeyViolations, fv)
			}
		}
	}

	return customErr
}

func stringifyMeta(meta map[string]any) map[string]string {
	out := make(map[string]string, len(meta))
	for k, v := range meta {
		if k == MetaKeyReason || k == MetaKeyViolations {
			continue
		}
		out[k] = fmt.Sprint(v)
	}
	return out
}
