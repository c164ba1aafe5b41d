package grpcservice

import (
	"context"
	"net/http"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	pb "go.klb.dev/lanclip/gen/lanclip/v1"
)

// NewGateway returns a read-only HTTP mux over srv:
//
//	GET /v1/status   StatusResponse as JSON
//	GET /v1/devices  ListDevicesResponse as JSON
func NewGateway(srv pb.ControlServiceServer) (*gwruntime.ServeMux, error) {
	mux := gwruntime.NewServeMux(
		gwruntime.WithMarshalerOption(gwruntime.MIMEWildcard, &gwruntime.JSONPb{
			MarshalOptions: protojson.MarshalOptions{EmitUnpopulated: true, UseProtoNames: true},
		}),
	)

	routes := map[string]func(context.Context) (proto.Message, error){
		"/v1/status": func(ctx context.Context) (proto.Message, error) {
			return srv.Status(ctx, &pb.StatusRequest{})
		},
		"/v1/devices": func(ctx context.Context) (proto.Message, error) {
			return srv.ListDevices(ctx, &pb.ListDevicesRequest{})
		},
	}
	for path, call := range routes {
		err := mux.HandlePath(http.MethodGet, path, func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
			ctx := r.Context()
			_, out := gwruntime.MarshalerForRequest(mux, r)
			resp, err := call(ctx)
			if err != nil {
				gwruntime.HTTPError(ctx, mux, out, w, r, err)
				return
			}
			gwruntime.ForwardResponseMessage(ctx, mux, out, w, r, resp)
		})
		if err != nil {
			return nil, err
		}
	}
	return mux, nil
}
