package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/t4gged/t4gged/internal/common"
	"github.com/t4gged/t4gged/internal/logging"
	sc "github.com/t4gged/t4gged/internal/server/config"
	"github.com/t4gged/t4gged/internal/server/repositories/repomanager"
)

// S3 construction is held in variables so tests can run without MinIO.
var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}

	randomKeySuffix = func() (string, error) { return common.MakeRandHexString(16) }
)

// AvatarService hands out presigned upload URLs for user avatars and
// records where each avatar lives.
type AvatarService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
	logger      logging.Logger
}

func NewAvatarService(db *sql.DB, m repomanager.RepositoryManager, cfg *sc.Config, logger logging.Logger) *AvatarService {
	return &AvatarService{
		db:          db,
		repomanager: m,
		config:      cfg,
		logger:      logger.With("module", "avatars"),
	}
}

// AvatarKey is the object key of a new avatar for user.
func AvatarKey(user, suffix string) string {
	return fmt.Sprintf("avatars/%s/%s", user, suffix)
}

// ObjectURL is the path-style URL of key in the avatar bucket.
func (s *AvatarService) ObjectURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.config.S3BaseEndpoint, "/"), s.config.S3Bucket, key)
}

func (s *AvatarService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// PresignAvatarUpload presigns a PUT for a fresh avatar object and stores
// its URL on the user's record. It returns the upload URL and the avatar URL.
func (s *AvatarService) PresignAvatarUpload(ctx context.Context, user string) (string, string, error) {
	users := s.repomanager.Users(s.db)
	if _, err := users.Get(ctx, user); err != nil {
		return "", "", storeErr("fetch user", err, common.ErrNotFound)
	}

	suffix, err := randomKeySuffix()
	if err != nil {
		return "", "", fmt.Errorf("avatar key: %w", err)
	}
	key := AvatarKey(user, suffix)

	pc, err := s.getPresignClient(ctx)
	if err != nil {
		return "", "", common.NewStoreError("s3 config", err)
	}

	req, err := presignPutObject(pc, ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.config.S3Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.config.AvatarUploadValidity))
	if err != nil {
		return "", "", common.NewStoreError("presign avatar", err)
	}

	avatarURL := s.ObjectURL(key)
	if err := users.SetAvatarURL(ctx, user, avatarURL); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", "", common.ErrNotFound
		}
		return "", "", common.NewStoreError("save avatar url", err)
	}

	s.logger.Info(ctx, "avatar upload presigned", "user", user, "key", key)
	return req.URL, avatarURL, nil
}
