// Package proto holds the generated t4gged.v1 messages and RecordStore
// gRPC stubs. Edit proto/t4gged/v1/recordstore.proto and regenerate.
package proto

//go:generate protoc -I ../../proto --go_out=../.. --go_opt=module=github.com/t4gged/t4gged --go-grpc_out=../.. --go-grpc_opt=module=github.com/t4gged/t4gged t4gged/v1/recordstore.proto
