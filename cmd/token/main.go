package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/piresc/ridepay/internal/pkg/config"
	"github.com/piresc/ridepay/internal/pkg/jwt"
)

// token mints a bearer token for local testing against the API
func main() {
	configPath := flag.String("config", "config/ridepay.env", "path to the env file")
	actor := flag.String("actor", "", "actor id placed in the sub claim")
	role := flag.String("role", "rider", "rider or driver")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	if *actor == "" {
		log.Fatal("-actor is required")
	}

	configs := config.InitConfig(*configPath)
	if configs.JWT.Secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	token, expiresAt, err := jwt.GenerateToken(configs.JWT, *actor, *role, *ttl)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}
	fmt.Println(token)
	log.Printf("expires at %s", expiresAt.Format(time.RFC3339))
}
