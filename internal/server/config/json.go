package config

import (
	"encoding/json"
	"os"

	"github.com/t4gged/t4gged/internal/flagx"
	"github.com/t4gged/t4gged/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept
// "15m" style strings or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC     string         `json:"endpoint_addr_grpc"`
	MetricsAddr          string         `json:"metrics_addr"`
	DatabaseDSN          string         `json:"database_dsn"`
	SecretKey            string         `json:"secret_key"`
	LogBackend           string         `json:"log_backend"`
	InviteRatePerMinute  int            `json:"invite_rate_per_minute"`
	InviteBurst          int            `json:"invite_burst"`
	AvatarUploadValidity timex.Duration `json:"avatar_upload_validity"`
	S3RootUser           string         `json:"s3_root_user"`
	S3RootPassword       string         `json:"s3_root_password"`
	S3Bucket             string         `json:"s3_bucket"`
	S3Region             string         `json:"s3_region"`
	S3BaseEndpoint       string         `json:"s3_base_endpoint"`
}

// parseJson overlays the file named by -c/-config. Keys absent from the
// file keep their current value. An unreadable or invalid file panics.
func parseJson(config *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.MetricsAddr, c.MetricsAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.LogBackend, c.LogBackend)
	if c.InviteRatePerMinute > 0 {
		config.InviteRatePerMinute = c.InviteRatePerMinute
	}
	if c.InviteBurst > 0 {
		config.InviteBurst = c.InviteBurst
	}
	if c.AvatarUploadValidity.Duration > 0 {
		config.AvatarUploadValidity = c.AvatarUploadValidity.Duration
	}
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
