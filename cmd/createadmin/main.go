package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"nupo-consult/internal/app"
	"nupo-consult/internal/bootstrap"
	"nupo-consult/internal/rbac"
	"nupo-consult/internal/rbac/infra"
	"nupo-consult/internal/shared/config"
	"nupo-consult/internal/shared/connection"
	"nupo-consult/internal/user"
	usererrors "nupo-consult/internal/user/errors"

	"go.uber.org/zap"
)

func main() {
	name := flag.String("name", "System Administrator", "display name")
	email := flag.String("email", "admin@nupoconsult.com", "login email")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "login password (or ADMIN_PASSWORD)")
	role := flag.String("role", rbac.RoleAdmin, "admin, editor, staff or viewer")
	flag.Parse()

	if len(*password) < 8 {
		log.Fatal("password must be at least 8 characters")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger, err := bootstrap.NewLogger(cfg.App)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	db, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		logger.Fatal("connect database failed", zap.Error(err))
	}
	if err := app.Migrate(db); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}

	ctx := context.Background()

	enforcer, err := infra.NewEnforcer()
	if err != nil {
		logger.Fatal("build enforcer failed", zap.Error(err))
	}
	if err := rbac.NewService(rbac.NewRepository(db), enforcer, logger).SeedDefaults(ctx); err != nil {
		logger.Fatal("seed role permissions failed", zap.Error(err))
	}

	created, err := user.NewService(user.NewRepository(db), logger).Create(ctx, user.CreateUserRequest{
		Name:     *name,
		Email:    *email,
		Password: *password,
		Role:     *role,
	})
	if errors.Is(err, usererrors.ErrUserAlreadyExists) {
		fmt.Printf("User %s already exists!\n", *email)
		return
	}
	if err != nil {
		logger.Fatal("create user failed", zap.Error(err))
	}

	fmt.Printf("User %s created with role %s (id %s)\n", created.Email, created.Role, created.ID)
}
