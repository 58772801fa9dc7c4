package proto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestDescriptor_ServiceMatchesMethodNames(t *testing.T) {
	sd := File_t4gged_v1_recordstore_proto.Services().ByName("RecordStore")
	require.NotNil(t, sd)
	assert.Equal(t, protoreflect.FullName(RecordStore_ServiceDesc.ServiceName), sd.FullName())

	want := []string{
		RecordStore_Ping_FullMethodName,
		RecordStore_GetOrCreateUser_FullMethodName,
		RecordStore_DiscoverIdentity_FullMethodName,
		RecordStore_SendInvite_FullMethodName,
		RecordStore_RespondToInvite_FullMethodName,
		RecordStore_ListInvites_FullMethodName,
		RecordStore_ListFriends_FullMethodName,
		RecordStore_PresignAvatarUpload_FullMethodName,
	}
	require.Equal(t, len(want), sd.Methods().Len())
	for i, name := range want {
		md := sd.Methods().Get(i)
		assert.Equal(t, name, "/"+string(sd.FullName())+"/"+string(md.Name()))
		assert.Equal(t, string(md.Name())+"Request", string(md.Input().Name()))
		assert.Equal(t, string(md.Name())+"Response", string(md.Output().Name()))
	}
}

func TestRespondToInviteResponse_WireRoundTrip(t *testing.T) {
	since := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	in := &RespondToInviteResponse{
		Invite:     &Invite{Id: "i1", FromUser: "u1", ToUser: "u2", Status: "accepted", SentAt: timestamppb.New(since)},
		Friendship: &Friendship{Id: "f1", UserA: "u1", UserB: "u2", Since: timestamppb.New(since)},
	}

	b, err := proto.Marshal(in)
	require.NoError(t, err)

	var out RespondToInviteResponse
	require.NoError(t, proto.Unmarshal(b, &out))
	assert.True(t, proto.Equal(in, &out))
	assert.Equal(t, since, out.GetFriendship().GetSince().AsTime())
}

func TestGetters_NilSafe(t *testing.T) {
	var resp *RespondToInviteResponse
	assert.Nil(t, resp.GetFriendship())
	assert.Empty(t, resp.GetInvite().GetId())

	declined := &RespondToInviteResponse{Invite: &Invite{Id: "i1", Status: "declined"}}
	assert.Nil(t, declined.GetFriendship())
}
