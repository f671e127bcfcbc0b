package transport

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// RegisterREST mounts every operation on mux at its REST path.
// Path parameters and query string values are merged into the JSON body.
func RegisterREST(mux *gwruntime.ServeMux, handler *Handler, auth Authenticator) error {
	for _, op := range operations {
		if err := mux.HandlePath(op.method, op.path, restHandler(mux, handler, auth, op.name)); err != nil {
			return fmt.Errorf("register %s %s: %w", op.method, op.path, err)
		}
	}
	return nil
}

func restHandler(mux *gwruntime.ServeMux, handler *Handler, auth Authenticator, method string) gwruntime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
		ctx := r.Context()
		inbound, outbound := gwruntime.MarshalerForRequest(mux, r)

		in := &structpb.Struct{}
		if r.Body != nil && r.Method != http.MethodGet {
			if err := inbound.NewDecoder(r.Body).Decode(in); err != nil && !errors.Is(err, io.EOF) {
				gwruntime.HTTPError(ctx, mux, outbound, w, r, status.Errorf(codes.InvalidArgument, "decode body: %v", err))
				return
			}
		}
		if in.Fields == nil {
			in.Fields = map[string]*structpb.Value{}
		}
		for key, values := range r.URL.Query() {
			if len(values) > 0 {
				in.Fields[key] = structpb.NewStringValue(values[0])
			}
		}
		for key, value := range pathParams {
			in.Fields[key] = structpb.NewStringValue(value)
		}

		caller, err := auth.Authenticate(method, Credentials{
			Address:   r.Header.Get(CallerHeader),
			Signature: r.Header.Get(SignatureHeader),
			Timestamp: r.Header.Get(TimestampHeader),
		})
		if err != nil {
			gwruntime.HTTPError(ctx, mux, outbound, w, r, err)
			return
		}

		out, err := handler.Invoke(ctx, method, caller, in)
		if err != nil {
			gwruntime.HTTPError(ctx, mux, outbound, w, r, err)
			return
		}
		gwruntime.ForwardResponseMessage(ctx, mux, outbound, w, r, out)
	}
}
