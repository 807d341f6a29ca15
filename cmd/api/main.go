package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/averoza/account-api/internal/config"
	"github.com/averoza/account-api/internal/logging"
	"github.com/averoza/account-api/internal/repository/mongodb"
	"github.com/averoza/account-api/internal/service"
	transport "github.com/averoza/account-api/internal/transport/http"
	"github.com/averoza/account-api/internal/transport/mail"
)

func main() {
	cfg := config.Load()

	if cfg.LogstashTCPAddr != "" {
		shipper := logging.NewShipper(cfg.LogstashTCPAddr)
		defer shipper.Close()
		log.SetOutput(io.MultiWriter(os.Stdout, shipper))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("connect mongodb: %v", err)
	}

	accounts := mongodb.NewAccountRepo(db)
	verifications := mongodb.NewVerificationTokenRepo(db)
	resets := mongodb.NewResetTokenRepo(db)

	for _, repo := range []interface {
		EnsureIndexes(context.Context) error
	}{accounts, verifications, resets} {
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Fatalf("create indexes: %v", err)
		}
	}

	mailer := mail.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	if err := mailer.Verify(); err != nil {
		log.Printf("Warning: SMTP server not reachable: %v", err)
	} else {
		log.Println("SMTP server is ready to take messages")
	}

	svc := service.NewAccountService(
		accounts, verifications, resets, mailer,
		cfg.AppBaseURL, cfg.VerificationTTL, cfg.PasswordResetTTL,
	)

	e := transport.NewRouter(cfg.AllowOrigins)
	transport.RegisterAccounts(e, svc)
	transport.RegisterSwagger(e)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
