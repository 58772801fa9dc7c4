package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/t4gged/t4gged/internal/common"
	pb "github.com/t4gged/t4gged/internal/proto"
	"github.com/t4gged/t4gged/internal/server/models"
)

func (s *GRPCServer) caller(ctx context.Context) (string, error) {
	ref, ok := identityFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, common.ErrNoIdentity.Error())
	}
	return ref, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) GetOrCreateUser(ctx context.Context, req *pb.GetOrCreateUserRequest) (*pb.GetOrCreateUserResponse, error) {
	ref, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetOrCreateUser(ctx, ref, req.GetDisplayName(), optional(req.GetOverrideUsername()))
	if err != nil {
		return nil, s.toStatus(ctx, pb.RecordStore_GetOrCreateUser_FullMethodName, err)
	}

	return &pb.GetOrCreateUserResponse{User: toProtoUser(user)}, nil
}

// DiscoverIdentity looks up the given name of req.IdentityRef, or of the
// caller when no ref is given.
func (s *GRPCServer) DiscoverIdentity(ctx context.Context, req *pb.DiscoverIdentityRequest) (*pb.DiscoverIdentityResponse, error) {
	ref, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if req.IdentityRef != "" {
		ref = req.IdentityRef
	}

	name, err := s.users.DiscoverDisplayName(ctx, ref)
	if err != nil {
		return nil, s.toStatus(ctx, pb.RecordStore_DiscoverIdentity_FullMethodName, err)
	}

	return &pb.DiscoverIdentityResponse{GivenName: name}, nil
}

func (s *GRPCServer) SendInvite(ctx context.Context, req *pb.SendInviteRequest) (*pb.SendInviteResponse, error) {
	ref, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	invite, err := s.invites.SendInvite(ctx, ref, req.GetToUser())
	if err != nil {
		return nil, s.toStatus(ctx, pb.RecordStore_SendInvite_FullMethodName, err)
	}

	return &pb.SendInviteResponse{Invite: toProtoInvite(invite)}, nil
}

func (s *GRPCServer) RespondToInvite(ctx context.Context, req *pb.RespondToInviteRequest) (*pb.RespondToInviteResponse, error) {
	ref, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	invite, friendship, err := s.invites.RespondToInvite(ctx, ref, req.GetInviteId(), req.GetAccept())
	if err != nil {
		return nil, s.toStatus(ctx, pb.RecordStore_RespondToInvite_FullMethodName, err)
	}

	resp := &pb.RespondToInviteResponse{Invite: toProtoInvite(invite)}
	if friendship != nil {
		resp.Friendship = toProtoFriendship(friendship)
	}
	return resp, nil
}

func (s *GRPCServer) ListInvites(ctx context.Context, req *pb.ListInvitesRequest) (*pb.ListInvitesResponse, error) {
	ref, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	direction := models.DirectionIncoming
	if req.Direction != "" {
		if direction, err = models.ParseDirection(req.Direction); err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
	}

	var filter *models.InviteStatus
	if req.Status != "" {
		st, err := models.ParseInviteStatus(req.Status)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		filter = &st
	}

	list, err := s.invites.ListInvites(ctx, ref, direction, filter)
	if err != nil {
		return nil, s.toStatus(ctx, pb.RecordStore_ListInvites_FullMethodName, err)
	}

	resp := &pb.ListInvitesResponse{Invites: make([]*pb.Invite, 0, len(list))}
	for _, inv := range list {
		resp.Invites = append(resp.Invites, toProtoInvite(inv))
	}
	return resp, nil
}

func (s *GRPCServer) ListFriends(ctx context.Context, req *pb.ListFriendsRequest) (*pb.ListFriendsResponse, error) {
	ref, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.invites.ListFriendships(ctx, ref)
	if err != nil {
		return nil, s.toStatus(ctx, pb.RecordStore_ListFriends_FullMethodName, err)
	}

	resp := &pb.ListFriendsResponse{Friendships: make([]*pb.Friendship, 0, len(list))}
	for _, f := range list {
		resp.Friendships = append(resp.Friendships, toProtoFriendship(f))
	}
	return resp, nil
}

func (s *GRPCServer) PresignAvatarUpload(ctx context.Context, req *pb.PresignAvatarUploadRequest) (*pb.PresignAvatarUploadResponse, error) {
	ref, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	uploadURL, avatarURL, err := s.avatars.PresignAvatarUpload(ctx, ref)
	if err != nil {
		return nil, s.toStatus(ctx, pb.RecordStore_PresignAvatarUpload_FullMethodName, err)
	}

	return &pb.PresignAvatarUploadResponse{UploadUrl: uploadURL, AvatarUrl: avatarURL}, nil
}

// optional maps the empty string, which proto3 cannot tell from an unset
// field, to nil.
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func toProtoUser(u *models.User) *pb.User {
	out := &pb.User{Id: u.ID, Username: u.Username, CreatedAt: timestamppb.New(u.CreatedAt)}
	if u.AvatarURL != nil {
		out.AvatarUrl = *u.AvatarURL
	}
	return out
}

func toProtoInvite(i *models.FriendInvite) *pb.Invite {
	return &pb.Invite{Id: i.ID, FromUser: i.FromUser, ToUser: i.ToUser, Status: string(i.Status), SentAt: timestamppb.New(i.SentAt)}
}

func toProtoFriendship(f *models.Friendship) *pb.Friendship {
	return &pb.Friendship{Id: f.ID, UserA: f.UserA, UserB: f.UserB, Since: timestamppb.New(f.Since)}
}
