package main

import (
	"flag"
	"fmt"
	"log"

	"coop_slots/internal/config"
	"coop_slots/internal/config/env"
	"coop_slots/pkg/token"
)

// Выпускает токен оператора для PUT /slot/config и POST /session/reset
func main() {
	subject := flag.String("subject", "operator", "token subject")
	flag.Parse()

	if err := config.Load(".env"); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	cfg, err := env.NewOperatorConfig()
	if err != nil {
		log.Fatalf("failed to get operator config: %v", err)
	}

	tok, err := token.GenerateAccessToken(*subject, cfg.TokenSecretKey(), cfg.TokenDuration())
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}
	fmt.Println(tok)
}
