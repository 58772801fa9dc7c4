// Command idtoken registers a device identity and writes its identity token.
//
//	idtoken -i <ref> -g <given name> -s <secret> -o .t4gged/identity.jwt
//
// With -d the identity is also registered in the record store database so
// the device can discover its display name. Without -d only the token is
// written.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/t4gged/t4gged/internal/filex"
	"github.com/t4gged/t4gged/internal/logging"
	"github.com/t4gged/t4gged/internal/server/auth"
	"github.com/t4gged/t4gged/internal/server/repositories/repomanager"
	"github.com/t4gged/t4gged/internal/server/services"
)

type options struct {
	dsn       string
	secret    string
	ref       string
	givenName string
	out       string
	validity  time.Duration
}

func parseOptions(args []string) (*options, error) {
	o := &options{}
	fs := flag.NewFlagSet("idtoken", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&o.dsn, "d", "", "record store database DSN")
	fs.StringVar(&o.secret, "s", "secretKey", "token signing key")
	fs.StringVar(&o.ref, "i", "", "identity reference")
	fs.StringVar(&o.givenName, "g", "", "given name")
	fs.StringVar(&o.out, "o", ".t4gged/identity.jwt", "token output file")
	fs.DurationVar(&o.validity, "x", 30*24*time.Hour, "token validity")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if o.ref == "" {
		return nil, fmt.Errorf("identity reference (-i) is required")
	}
	return o, nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	o, err := parseOptions(args)
	if err != nil {
		return err
	}

	if o.dsn != "" {
		if err := register(ctx, o); err != nil {
			return err
		}
	}

	token, err := auth.GenerateIdentityToken(o.ref, o.givenName, []byte(o.secret), o.validity)
	if err != nil {
		return err
	}
	if err := filex.WriteSecret(o.out, []byte(token)); err != nil {
		return fmt.Errorf("write token: %w", err)
	}

	fmt.Fprintf(stdout, "identity token for %s written to %s\n", o.ref, o.out)
	return nil
}

func register(ctx context.Context, o *options) error {
	db, err := repomanager.OpenPostgres(ctx, o.dsn)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	logger := logging.NewTextLogger(os.Stderr, 0)
	return services.NewUserService(db, rm, logger).RegisterIdentity(ctx, o.ref, o.givenName)
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}
