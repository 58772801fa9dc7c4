package config

import (
	"flag"
	"os"
	"time"

	"github.com/t4gged/t4gged/internal/flagx"
)

// parseFlags overlays command-line flags:
//
//	-a string   gRPC bind address
//	-m string   metrics bind address ("" disables)
//	-d string   PostgreSQL DSN
//	-s string   identity token secret
//	-l string   log backend (slog|zap)
//	-r int      SendInvite calls per minute per identity
//	-n int      SendInvite burst
//	-v int      avatar upload URL validity, minutes
//	-u/-p/-b/-g/-e string   S3 user, password, bucket, region, endpoint
func parseFlags(config *Config) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "address and port of the metrics endpoint")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "identity token secret")
	fs.StringVar(&config.LogBackend, "l", config.LogBackend, "log backend: slog or zap")
	fs.IntVar(&config.InviteRatePerMinute, "r", config.InviteRatePerMinute, "invites per minute per identity")
	fs.IntVar(&config.InviteBurst, "n", config.InviteBurst, "invite burst")
	avatarValidity := fs.Int("v", int(config.AvatarUploadValidity.Minutes()), "avatar upload URL validity (in minutes)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 avatar bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := flagx.ParseKnown(fs, os.Args[1:]); err != nil {
		panic(err)
	}

	config.AvatarUploadValidity = time.Duration(*avatarValidity) * time.Minute
}
