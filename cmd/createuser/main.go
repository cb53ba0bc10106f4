// Command createuser provisions a login for the feed.
//
//	createuser -username alice -password s3cret
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	dbadapter "socialfeed/internal/adapters/database"
	"socialfeed/internal/config"
	userapp "socialfeed/internal/core/user/service"

	"go.uber.org/zap"
)

func main() {
	username := flag.String("username", "", "login name of the new user")
	password := flag.String("password", "", "password of the new user")
	flag.Parse()

	if *username == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = config.LoadEnv()
	config.InitLogger()
	defer config.Logger.Sync()

	config.Init("DB_DSN")
	config.InitDB()
	if err := dbadapter.Migrate(config.DB); err != nil {
		config.Logger.Fatal("Error during migrations", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userSvc := userapp.NewUserService(dbadapter.NewUserRepositoryDatabase(config.DB), config.Logger)
	u, err := userSvc.RegisterUser(ctx, *username, *password)
	if err != nil {
		config.Logger.Fatal("Could not create user", zap.String("username", *username), zap.Error(err))
	}
	fmt.Printf("created user %s (%s)\n", u.Username, u.ID)
}
